package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/slidekit/internal/slider"
	"github.com/dshills/slidekit/internal/track"
)

func newTestUI(t *testing.T) (*UI, *slider.Controller, *[]slider.Value, *[]slider.Value) {
	t.Helper()

	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("initializing simulation screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	var ui *UI
	changes := &[]slider.Value{}
	completes := &[]slider.Value{}

	ctrl, err := slider.New(slider.Config{
		Mode:         slider.ModeRange,
		MinValue:     0,
		MaxValue:     100,
		Step:         1,
		DefaultValue: track.Range{Min: 20, Max: 80},
		OnChange: func(v slider.Value) {
			*changes = append(*changes, v)
		},
		OnChangeComplete: func(v slider.Value) {
			*completes = append(*completes, v)
		},
		TrackRect: func() track.Rect {
			return ui.TrackRect()
		},
	})
	if err != nil {
		t.Fatalf("building controller: %v", err)
	}

	ui = NewWithScreen(screen, ctrl, nil)
	return ui, ctrl, changes, completes
}

func TestTrackRectFollowsScreenSize(t *testing.T) {
	ui, _, _, _ := newTestUI(t)

	rect := ui.TrackRect()
	if rect.X != trackMargin {
		t.Errorf("rect.X = %v, want %v", rect.X, trackMargin)
	}
	if rect.Width != 80-2*trackMargin {
		t.Errorf("rect.Width = %v, want %v", rect.Width, 80-2*trackMargin)
	}
	if rect.Y != 12 {
		t.Errorf("rect.Y = %v, want 12", rect.Y)
	}
}

func TestMouseDragSequence(t *testing.T) {
	ui, ctrl, changes, completes := newTestUI(t)

	// The 76-cell track maps column 63 onto the max handle's value of
	// 80, so the press itself commits nothing.
	ui.handleMouse(tcell.NewEventMouse(63, 12, tcell.Button1, tcell.ModNone))
	if len(*changes) != 0 {
		t.Fatalf("press fired %d changes", len(*changes))
	}
	if !ctrl.Dragging() {
		t.Fatal("controller not dragging after press")
	}

	// Dragging to column 70 maps to 89.
	ui.handleMouse(tcell.NewEventMouse(70, 12, tcell.Button1, tcell.ModNone))
	if len(*changes) != 1 {
		t.Fatalf("drag fired %d changes, want 1", len(*changes))
	}
	if v := (*changes)[0]; v.Min != 20 || v.Max != 89 {
		t.Errorf("change = %+v, want {20 89}", v)
	}

	ui.handleMouse(tcell.NewEventMouse(70, 12, tcell.ButtonNone, tcell.ModNone))
	if ctrl.Dragging() {
		t.Error("controller still dragging after release")
	}
	if len(*completes) != 1 {
		t.Errorf("release fired %d completions, want 1", len(*completes))
	}
}

func TestKeySynthesizesRelease(t *testing.T) {
	ui, _, changes, completes := newTestUI(t)

	ui.handleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))

	if len(*changes) != 1 {
		t.Fatalf("arrow press fired %d changes, want 1", len(*changes))
	}
	if len(*completes) != 1 {
		t.Errorf("synthesized release fired %d completions, want 1", len(*completes))
	}
}

func TestTabSwitchesFocus(t *testing.T) {
	ui, ctrl, _, _ := newTestUI(t)

	if ctrl.FocusedHandle() != slider.HandleMax {
		t.Fatal("initial focus not on max handle")
	}
	ui.handleKey(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	if ctrl.FocusedHandle() != slider.HandleMin {
		t.Error("tab did not move focus to min handle")
	}
	ui.handleKey(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	if ctrl.FocusedHandle() != slider.HandleMax {
		t.Error("tab did not move focus back to max handle")
	}
}

func TestDrawDoesNotPanic(t *testing.T) {
	ui, _, _, _ := newTestUI(t)
	ui.draw()
}
