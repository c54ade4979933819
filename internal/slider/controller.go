package slider

import (
	"math"
	"sync"

	"github.com/dshills/slidekit/internal/format"
	"github.com/dshills/slidekit/internal/input"
	"github.com/dshills/slidekit/internal/notify"
	"github.com/dshills/slidekit/internal/track"
)

// State represents the controller's drag state.
type State uint8

const (
	// StateIdle means no pointer gesture is in progress.
	StateIdle State = iota
	// StateDragging means a pointer gesture is in progress.
	StateDragging
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateDragging:
		return "dragging"
	default:
		return "idle"
	}
}

// ChangeEvent is published on the controller's Notifier for every
// accepted candidate.
type ChangeEvent struct {
	Value Value
}

// CompleteEvent is published once per completed gesture whose value
// changed since gesture start.
type CompleteEvent struct {
	Value Value
}

// Labels carries formatted label strings for the presentation layer.
type Labels struct {
	Value string
	Lower string
	Upper string
}

// emission is a callback invocation gathered under the lock and delivered
// after it is released, so host callbacks can safely re-enter the
// controller.
type emission struct {
	complete bool
	value    Value
}

// Controller drives one slider. It owns the transient interaction state
// as plain struct fields and applies the update gate to every candidate
// value computed from input.
//
// All handler methods are synchronous and run to completion; the mutex
// only guards against frontends that deliver events from more than one
// goroutine.
type Controller struct {
	mu    sync.Mutex
	cfg   Config
	scale track.Scale
	mode  Mode

	// value is the controller's record of the committed range. A
	// controlled host overwrites it on every Apply, keeping the host the
	// source of truth.
	value track.Range

	state      State
	active     Handle
	focused    Handle
	gesture    *Gesture
	dragStart  *track.Range
	keySession bool

	events *notify.Notifier
}

// New validates the configuration and builds a controller. The mode is
// fixed from this point on.
func New(cfg Config) (*Controller, error) {
	scale, err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	return &Controller{
		cfg:     cfg,
		scale:   scale,
		mode:    cfg.Mode,
		value:   cfg.initialRange(scale),
		focused: HandleMax,
		events:  notify.NewNotifier(),
	}, nil
}

// Apply swaps in a re-supplied configuration. Interaction state survives;
// the mode may not change. A controlled value in the new configuration
// overwrites the controller's record.
func (c *Controller) Apply(cfg Config) error {
	scale, err := cfg.Validate()
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if cfg.Mode != c.mode {
		return ErrModeChanged
	}
	c.cfg = cfg
	c.scale = scale

	// Disabling mid-interaction must not strand session bookkeeping: a
	// keyboard session opened before the reload would otherwise survive
	// until the next Blur and leak a stale completion baseline.
	if cfg.Disabled {
		c.keySession = false
		if c.state != StateDragging {
			c.dragStart = nil
		}
	}

	if cfg.Value != nil {
		c.value = cfg.initialRange(scale)
	}
	return nil
}

// Events returns the notifier publishing ChangeEvent and CompleteEvent.
func (c *Controller) Events() *notify.Notifier {
	return c.events
}

// Mode returns the controller's mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Value returns the current committed value in host-facing shape.
func (c *Controller) Value() Value {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

// Percentages returns the current value normalized to [0, 1] for
// positioning handle visuals.
func (c *Controller) Percentages() track.Percentages {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scale.PercentagesFromValues(c.value)
}

// Positions returns the handle positions on the given track rectangle.
func (c *Controller) Positions(rect track.Rect) track.Positions {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scale.PositionsFromValues(c.value, rect)
}

// ActiveHandle returns the handle being dragged, or HandleNone.
func (c *Controller) ActiveHandle() Handle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// FocusedHandle returns the handle keyboard input is directed at.
func (c *Controller) FocusedHandle() Handle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.focused
}

// Dragging returns true while a pointer gesture is in progress.
func (c *Controller) Dragging() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateDragging
}

// Focus directs keyboard input at the given handle. ModeSingle only has
// HandleMax; other requests are coerced to it.
func (c *Controller) Focus(h Handle) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode == ModeSingle || h == HandleNone {
		c.focused = HandleMax
		return
	}
	c.focused = h
}

// Labels formats the current value and bounds with f. A nil f uses the
// default formatter. In ModeRange the value label joins both endpoints.
func (c *Controller) Labels(f format.Func) Labels {
	if f == nil {
		f = format.Default
	}

	c.mu.Lock()
	v := c.value
	mode := c.mode
	scale := c.scale
	c.mu.Unlock()

	l := Labels{
		Lower: f(scale.MinValue),
		Upper: f(scale.MaxValue),
	}
	if mode == ModeSingle {
		l.Value = f(v.Max)
	} else {
		l.Value = f(v.Min) + " - " + f(v.Max)
	}
	return l
}

// Press begins a pointer gesture. It resolves the nearer handle, maps the
// press point to a candidate value, and commits it if the gate passes.
// The returned Gesture must be ended or cancelled; nil is returned when
// the controller is disabled or a gesture is already live.
func (c *Controller) Press(ev input.PointerEvent) *Gesture {
	c.mu.Lock()
	if c.cfg.Disabled || c.state == StateDragging {
		c.mu.Unlock()
		return nil
	}

	rect := c.cfg.TrackRect()
	pos := track.PositionFromPointer(ev.Position, rect)

	h := c.resolveActiveHandleLocked(pos, rect)
	c.active = h
	c.focused = h
	c.state = StateDragging

	// Start-value bookkeeping only matters when someone listens for the
	// completion notification.
	if c.cfg.OnChangeComplete != nil {
		start := c.value
		c.dragStart = &start
	}

	g := newGesture(c)
	c.gesture = g

	var emits []emission
	if cand, ok := c.pointerCandidateLocked(h, pos, rect); ok {
		emits = c.commitLocked(cand)
	}
	c.mu.Unlock()

	c.emit(emits)
	return g
}

// Move recomputes the candidate for the active handle from a new pointer
// position. It is ignored entirely when disabled or idle. The gate runs
// per move event, so it stays cheap: two comparisons and two
// subtractions.
func (c *Controller) Move(ev input.PointerEvent) bool {
	c.mu.Lock()
	if c.cfg.Disabled || c.state != StateDragging || c.active == HandleNone {
		c.mu.Unlock()
		return false
	}

	rect := c.cfg.TrackRect()
	pos := track.PositionFromPointer(ev.Position, rect)
	var emits []emission
	if cand, ok := c.pointerCandidateLocked(c.active, pos, rect); ok {
		emits = c.commitLocked(cand)
	}
	c.mu.Unlock()

	c.emit(emits)
	return len(emits) > 0
}

// Release ends the pointer gesture: the active handle is cleared and the
// completion notification fires if the value changed since the press.
func (c *Controller) Release(_ input.PointerEvent) {
	c.mu.Lock()
	emits := c.releaseLocked(true)
	c.mu.Unlock()

	c.emit(emits)
}

// Blur is the defensive recovery path for a missed release: loss of input
// focus is treated as an implicit release. It also closes any keyboard
// session.
func (c *Controller) Blur() {
	c.mu.Lock()
	emits := c.releaseLocked(true)
	emits = append(emits, c.endKeySessionLocked()...)
	c.mu.Unlock()

	c.emit(emits)
}

// HandleKey processes a key event for the focused handle. Arrow presses
// step the value and report true so the frontend can suppress its native
// scroll behavior; the matching release runs the completion check.
// Disabled suppresses the whole path, bookkeeping included, keeping the
// keyboard and pointer policies uniform.
func (c *Controller) HandleKey(ev input.KeyEvent) bool {
	c.mu.Lock()
	if c.cfg.Disabled {
		c.mu.Unlock()
		return false
	}

	switch ev.Action {
	case input.ActionRelease:
		emits := c.endKeySessionLocked()
		c.mu.Unlock()
		c.emit(emits)
		return false

	case input.ActionPress:
		if !ev.Key.IsArrow() {
			c.mu.Unlock()
			return false
		}

		// Same start-value bookkeeping as a pointer press; idempotent
		// across auto-repeat.
		if !c.keySession {
			c.keySession = true
			if c.cfg.OnChangeComplete != nil && c.dragStart == nil {
				start := c.value
				c.dragStart = &start
			}
		}

		delta := c.scale.Step
		if ev.Key.IsDecrement() {
			delta = -delta
		}

		cand := c.value
		switch c.focused {
		case HandleMin:
			cand.Min = c.scale.Clamp(cand.Min + delta)
		default:
			cand.Max = c.scale.Clamp(cand.Max + delta)
		}

		emits := c.commitLocked(cand)
		c.mu.Unlock()
		c.emit(emits)
		return true
	}

	c.mu.Unlock()
	return false
}

// resolveActiveHandleLocked picks the handle a press targets: always
// HandleMax in ModeSingle, otherwise the handle nearest to the press
// point, ties going to HandleMax.
func (c *Controller) resolveActiveHandleLocked(pos input.Position, rect track.Rect) Handle {
	if c.mode == ModeSingle {
		return HandleMax
	}
	positions := c.scale.PositionsFromValues(c.value, rect)
	if pos.Distance(positions.Min) < pos.Distance(positions.Max) {
		return HandleMin
	}
	return HandleMax
}

// pointerCandidateLocked maps a track-relative position to a stepped
// candidate range for the given handle. The step threshold is checked
// against the raw position-derived value, before quantization: rounding
// must never amplify sub-step pointer motion into a full step, so a
// pointer oscillating near a rounding boundary cannot toggle the value.
func (c *Controller) pointerCandidateLocked(h Handle, pos input.Position, rect track.Rect) (track.Range, bool) {
	raw := c.scale.ValueFromPosition(pos, rect)

	cur := c.value.Max
	if h == HandleMin {
		cur = c.value.Min
	}
	if math.Abs(raw-cur) < c.scale.Step {
		return track.Range{}, false
	}

	v := c.scale.Clamp(c.scale.StepValue(raw))
	cand := c.value
	if h == HandleMin {
		cand.Min = v
	} else {
		cand.Max = v
	}
	if c.mode == ModeSingle {
		cand.Min = c.scale.MinValue
	}
	return cand, true
}

// shouldUpdateLocked is the update gate: range invariants plus the step
// difference threshold. Candidates failing either check are dropped
// silently.
func (c *Controller) shouldUpdateLocked(cand track.Range) bool {
	return withinRange(c.mode, c.scale, cand) && c.hasStepDifferenceLocked(cand)
}

// hasStepDifferenceLocked reports whether at least one endpoint moved by
// a full step, filtering sub-step jitter out of the notification stream.
func (c *Controller) hasStepDifferenceLocked(cand track.Range) bool {
	return math.Abs(cand.Min-c.value.Min) >= c.scale.Step ||
		math.Abs(cand.Max-c.value.Max) >= c.scale.Step
}

// commitLocked applies the gate and records an accepted candidate,
// returning the change emission for delivery outside the lock.
func (c *Controller) commitLocked(cand track.Range) []emission {
	if !c.shouldUpdateLocked(cand) {
		return nil
	}
	c.value = cand
	return []emission{{value: c.viewLocked()}}
}

// releaseLocked tears down the drag state. The completion notification is
// gathered when fire is set, the value changed since gesture start, and a
// completion callback exists. dragStart is cleared unconditionally.
func (c *Controller) releaseLocked(fire bool) []emission {
	if c.state != StateDragging {
		return nil
	}

	c.state = StateIdle
	c.active = HandleNone
	if c.gesture != nil {
		c.gesture.markEnded()
		c.gesture = nil
	}

	var emits []emission
	if fire && c.dragStart != nil && !c.dragStart.Equal(c.value) && c.cfg.OnChangeComplete != nil {
		emits = append(emits, emission{complete: true, value: c.viewLocked()})
	}
	c.dragStart = nil
	return emits
}

// endKeySessionLocked runs the same completion check as a pointer release
// for a keyboard session.
func (c *Controller) endKeySessionLocked() []emission {
	if !c.keySession {
		return nil
	}
	c.keySession = false

	var emits []emission
	if c.dragStart != nil && !c.dragStart.Equal(c.value) && c.cfg.OnChangeComplete != nil {
		emits = append(emits, emission{complete: true, value: c.viewLocked()})
	}
	c.dragStart = nil
	return emits
}

// finishGesture is the teardown entry point for Gesture.End and
// Gesture.Cancel. Stale gestures are ignored.
func (c *Controller) finishGesture(g *Gesture, fire bool) {
	c.mu.Lock()
	if c.gesture != g {
		c.mu.Unlock()
		return
	}
	emits := c.releaseLocked(fire)
	c.mu.Unlock()

	c.emit(emits)
}

// viewLocked translates the committed range to the host-facing shape.
func (c *Controller) viewLocked() Value {
	return Value{Mode: c.mode, Min: c.value.Min, Max: c.value.Max}
}

// emit delivers gathered emissions to host callbacks and the notifier.
// Runs outside the lock.
func (c *Controller) emit(emits []emission) {
	for _, e := range emits {
		if e.complete {
			if c.cfg.OnChangeComplete != nil {
				c.cfg.OnChangeComplete(e.value)
			}
			c.events.Publish(CompleteEvent{Value: e.value})
			continue
		}
		c.cfg.OnChange(e.value)
		c.events.Publish(ChangeEvent{Value: e.value})
	}
}
