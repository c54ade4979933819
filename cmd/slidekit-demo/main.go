// Package main is the terminal demo for the slidekit range control.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/slidekit/internal/config"
	"github.com/dshills/slidekit/internal/format"
	"github.com/dshills/slidekit/internal/slider"
	"github.com/dshills/slidekit/internal/term"
	"github.com/dshills/slidekit/internal/track"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	settings, err := loadSettings(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	label, err := labelFunc(settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Geometry comes from the UI, which needs the controller first, so
	// the supplier resolves through a pointer filled in below.
	var ui *term.UI
	trackRect := func() track.Rect {
		if ui == nil {
			return track.Rect{Width: 1, Height: 1}
		}
		return ui.TrackRect()
	}

	ctrl, err := slider.New(controllerConfig(settings, trackRect))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	ui, err = term.New(ctrl, label)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	// Live reload: re-apply the settings file whenever it changes.
	if opts.ConfigPath != "" && opts.Watch {
		w, err := config.NewWatcher(opts.ConfigPath, func(s *config.Settings, err error) {
			if err != nil || s == nil {
				return
			}
			if err := s.Validate(); err != nil {
				return
			}
			_ = ctrl.Apply(controllerConfig(*s, trackRect))
			if f, err := labelFunc(*s); err == nil {
				ui.SetFormatter(f)
			}
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: watching config: %v\n", err)
			return 1
		}
		defer w.Close()
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		ui.Stop()
	}()

	if err := ui.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	v := ctrl.Value()
	if v.Mode == slider.ModeRange {
		fmt.Printf("%v %v\n", v.Min, v.Max)
	} else {
		fmt.Printf("%v\n", v.Scalar())
	}
	return 0
}

type options struct {
	ConfigPath string
	Watch      bool
	Range      bool
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to settings file (.toml, .yaml)")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to settings file (shorthand)")
	flag.BoolVar(&opts.Watch, "watch", false, "Reload settings when the file changes")
	flag.BoolVar(&opts.Range, "range", false, "Two-handle range mode")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "slidekit-demo - interactive range selection in the terminal\n\n")
		fmt.Fprintf(os.Stderr, "Usage: slidekit-demo [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys: arrows adjust, Tab switches handles, q/Esc quits.\n")
		fmt.Fprintf(os.Stderr, "The selected value prints on exit.\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("slidekit-demo %s (%s)\n", version, commit)
		os.Exit(0)
	}

	return opts
}

func loadSettings(opts options) (config.Settings, error) {
	settings := config.DefaultSettings()
	settings.Range = opts.Range

	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return config.Settings{}, err
		}
		if loaded != nil {
			settings = *loaded
		}
	}

	if err := settings.Validate(); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}

// controllerConfig maps file settings onto a controller configuration.
// The demo renders from controller state, so OnChange only needs to
// exist, not act.
func controllerConfig(s config.Settings, rect func() track.Rect) slider.Config {
	return slider.Config{
		Mode:             s.Mode(),
		MinValue:         s.Min,
		MaxValue:         s.Max,
		Step:             s.Step,
		DefaultValue:     s.InitialRange(),
		Disabled:         s.Disabled,
		OnChange:         func(slider.Value) {},
		OnChangeComplete: func(slider.Value) {},
		TrackRect:        rect,
	}
}

func labelFunc(settings config.Settings) (format.Func, error) {
	if settings.LabelScript == "" {
		return format.Default, nil
	}
	f, err := format.NewLuaFormatter(settings.LabelScript)
	if err != nil {
		return nil, err
	}
	return f.Func(), nil
}
