package config

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ReloadFunc receives re-loaded settings, or the load error, after the
// watched file changes.
type ReloadFunc func(*Settings, error)

// Watcher re-loads a settings file whenever it is written. Editors often
// replace files via rename, so the parent directory is watched and events
// filtered to the target path.
type Watcher struct {
	mu     sync.Mutex
	fsw    *fsnotify.Watcher
	path   string
	reload ReloadFunc
	closed bool
	done   chan struct{}
}

// NewWatcher starts watching path and delivers every reload through fn.
func NewWatcher(path string, fn ReloadFunc) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:    fsw,
		path:   absPath,
		reload: fn,
		done:   make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Path returns the watched file path.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher. Closing twice is a no-op.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	w.closed = true
	err := w.fsw.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.reload(Load(w.path))

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.reload(nil, err)
		}
	}
}
