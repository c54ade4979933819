package term

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/slidekit/internal/format"
	"github.com/dshills/slidekit/internal/input"
	"github.com/dshills/slidekit/internal/slider"
	"github.com/dshills/slidekit/internal/track"
)

// trackMargin is the horizontal space reserved on each side of the track.
const trackMargin = 2

// UI renders one slider on a tcell screen and feeds terminal events into
// its controller.
type UI struct {
	mu      sync.Mutex
	screen  tcell.Screen
	ctrl    *slider.Controller
	label   format.Func
	pointer PointerTranslator
	gesture *slider.Gesture
}

// New creates a UI for the controller. The formatter may be nil for
// default labels.
func New(ctrl *slider.Controller, label format.Func) (*UI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &UI{screen: screen, ctrl: ctrl, label: label}, nil
}

// NewWithScreen creates a UI on a caller-supplied screen. Tests use this
// with tcell's simulation screen.
func NewWithScreen(screen tcell.Screen, ctrl *slider.Controller, label format.Func) *UI {
	return &UI{screen: screen, ctrl: ctrl, label: label}
}

// SetFormatter swaps the label formatter. Safe to call while Run is
// active; the next draw picks it up.
func (u *UI) SetFormatter(label format.Func) {
	u.mu.Lock()
	u.label = label
	u.mu.Unlock()
}

// TrackRect returns the track geometry for the current screen size. The
// controller configuration should point its TrackRect supplier here so
// geometry is re-queried per interaction.
func (u *UI) TrackRect() track.Rect {
	w, h := u.screen.Size()
	width := w - 2*trackMargin
	if width < 1 {
		width = 1
	}
	return track.Rect{
		X:      trackMargin,
		Y:      float64(h / 2),
		Width:  float64(width),
		Height: 1,
	}
}

// Run initializes the screen and processes events until Stop is called or
// the user quits with q, Escape, or Ctrl+C.
func (u *UI) Run() error {
	if err := u.screen.Init(); err != nil {
		return err
	}
	defer u.screen.Fini()

	u.screen.EnableMouse()
	u.draw()

	for {
		ev := u.screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventInterrupt:
			return nil

		case *tcell.EventResize:
			u.screen.Sync()
			u.draw()

		case *tcell.EventKey:
			if u.isQuitKey(ev) {
				return nil
			}
			u.handleKey(ev)
			u.draw()

		case *tcell.EventMouse:
			u.handleMouse(ev)
			u.draw()
		}
	}
}

// Stop wakes the event loop and makes Run return.
func (u *UI) Stop() {
	_ = u.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

func (u *UI) isQuitKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Rune() == 'q'
}

// handleKey feeds an arrow press and its synthesized release into the
// controller. Tab moves keyboard focus between handles in range mode.
func (u *UI) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyTab {
		if u.ctrl.FocusedHandle() == slider.HandleMax {
			u.ctrl.Focus(slider.HandleMin)
		} else {
			u.ctrl.Focus(slider.HandleMax)
		}
		return
	}

	kev, ok := TranslateKey(ev)
	if !ok {
		return
	}
	u.ctrl.HandleKey(kev)

	// Terminals never report key releases; synthesize one so the
	// completion notification fires per keystroke session.
	release := kev
	release.Action = input.ActionRelease
	u.ctrl.HandleKey(release)
}

func (u *UI) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()

	u.mu.Lock()
	pev, ok := u.pointer.Translate(x, y, ev.Buttons(), ev.Modifiers())
	u.mu.Unlock()
	if !ok {
		return
	}

	switch pev.Action {
	case input.ActionPress:
		g := u.ctrl.Press(pev)
		u.mu.Lock()
		u.gesture = g
		u.mu.Unlock()

	case input.ActionDrag:
		u.ctrl.Move(pev)

	case input.ActionRelease:
		u.mu.Lock()
		g := u.gesture
		u.gesture = nil
		u.mu.Unlock()
		if g != nil {
			g.End()
		} else {
			u.ctrl.Release(pev)
		}
	}
}

// draw renders the track, handles, and labels.
func (u *UI) draw() {
	u.mu.Lock()
	label := u.label
	u.mu.Unlock()

	u.screen.Clear()

	rect := u.TrackRect()
	width := int(rect.Width)
	row := int(rect.Y)
	left := int(rect.X)

	trackStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	handleStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	activeStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	fillStyle := tcell.StyleDefault.Foreground(tcell.ColorTeal)

	pct := u.ctrl.Percentages()
	minCol := HandleColumn(pct.Min, width)
	maxCol := HandleColumn(pct.Max, width)

	for i := 0; i < width; i++ {
		style := trackStyle
		r := tcell.RuneHLine
		if i > minCol && i < maxCol {
			style = fillStyle
		}
		u.screen.SetContent(left+i, row, r, nil, style)
	}

	active := u.ctrl.ActiveHandle()
	focused := u.ctrl.FocusedHandle()

	if u.ctrl.Mode() == slider.ModeRange {
		u.screen.SetContent(left+minCol, row, '█', nil,
			u.handleStyle(slider.HandleMin, active, focused, handleStyle, activeStyle))
	}
	u.screen.SetContent(left+maxCol, row, '█', nil,
		u.handleStyle(slider.HandleMax, active, focused, handleStyle, activeStyle))

	labels := u.ctrl.Labels(label)
	u.drawText(left, row+2, labels.Lower, trackStyle)
	u.drawText(left+width-len(labels.Upper), row+2, labels.Upper, trackStyle)
	u.drawText(left+(width-len(labels.Value))/2, row-2, labels.Value, handleStyle)

	u.screen.Show()
}

func (u *UI) handleStyle(h, active, focused slider.Handle, normal, hot tcell.Style) tcell.Style {
	if h == active {
		return hot
	}
	if h == focused {
		return normal.Underline(true)
	}
	return normal
}

func (u *UI) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		u.screen.SetContent(x+i, y, r, nil, style)
	}
}
