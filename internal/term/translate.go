package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/slidekit/internal/input"
)

// TranslateModifiers converts a tcell modifier mask.
func TranslateModifiers(m tcell.ModMask) input.Modifier {
	var mods input.Modifier
	if m&tcell.ModShift != 0 {
		mods |= input.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= input.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= input.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= input.ModMeta
	}
	return mods
}

// TranslateKey converts a tcell key event. The second return is false for
// keys the slider has no interest in.
func TranslateKey(ev *tcell.EventKey) (input.KeyEvent, bool) {
	var k input.Key
	switch ev.Key() {
	case tcell.KeyUp:
		k = input.KeyUp
	case tcell.KeyDown:
		k = input.KeyDown
	case tcell.KeyLeft:
		k = input.KeyLeft
	case tcell.KeyRight:
		k = input.KeyRight
	default:
		return input.KeyEvent{}, false
	}
	return input.NewKeyEvent(k, input.ActionPress, TranslateModifiers(ev.Modifiers())), true
}

// PointerTranslator turns tcell's stateless button-mask reports into
// press/drag/release events by remembering whether the primary button was
// held on the previous report.
type PointerTranslator struct {
	held bool
}

// Translate converts one mouse report. The second return is false for
// reports that carry no pointer action (plain movement with no button).
func (p *PointerTranslator) Translate(x, y int, buttons tcell.ButtonMask, mods tcell.ModMask) (input.PointerEvent, bool) {
	pos := input.Position{X: float64(x), Y: float64(y)}
	m := TranslateModifiers(mods)
	primary := buttons&tcell.Button1 != 0

	switch {
	case primary && !p.held:
		p.held = true
		return input.NewPointerEvent(pos, input.ButtonLeft, input.ActionPress, m), true
	case primary && p.held:
		return input.NewPointerEvent(pos, input.ButtonLeft, input.ActionDrag, m), true
	case !primary && p.held:
		p.held = false
		return input.NewPointerEvent(pos, input.ButtonLeft, input.ActionRelease, m), true
	default:
		return input.PointerEvent{}, false
	}
}

// Held reports whether the translator believes the primary button is
// down.
func (p *PointerTranslator) Held() bool {
	return p.held
}

// HandleColumn converts a [0, 1] percentage to a column offset within a
// track of the given width. The rightmost cell is reachable at exactly
// 1.0.
func HandleColumn(pct float64, width int) int {
	if width <= 1 {
		return 0
	}
	col := int(pct*float64(width-1) + 0.5)
	if col < 0 {
		return 0
	}
	if col > width-1 {
		return width - 1
	}
	return col
}
