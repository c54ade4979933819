// Package slider implements the interaction controller for the
// range-selection control.
//
// The controller owns the transient interaction state (which handle is
// active, the value recorded at gesture start) and the gating logic that
// decides whether a candidate value computed from raw input is committed.
// Pure coordinate math lives in the track package; event types live in the
// input package.
//
// # Modes
//
// A controller operates in one of two modes, fixed at construction:
//
//   - ModeSingle: one handle, one scalar value. The range's Min mirrors
//     the configured floor.
//   - ModeRange: two handles selecting a min/max pair. The handles can
//     never cross or coincide.
//
// # Gestures
//
// A pointer press begins a gesture and returns a *Gesture whose End or
// Cancel releases the interaction; this replaces ad-hoc global listener
// bookkeeping with an explicit scoped resource. Exactly one gesture may be
// live per controller; a press while one is live is refused.
//
//	g := ctrl.Press(ev)
//	if g != nil {
//	    defer g.End()
//	}
//
// # Value flow
//
// Every accepted candidate is handed to the host's OnChange callback and
// published on the controller's Notifier. The host remains the source of
// truth: a controlled host re-supplies the applied value through Apply on
// its next render, and that value wins over the controller's own record.
// At gesture end, OnChangeComplete fires once if and only if the value
// differs from the value recorded at gesture start.
//
// # Gating
//
// A candidate is committed only if it satisfies the range invariants
// (within bounds, min strictly below max in ModeRange) and differs from
// the current value by at least one step on at least one endpoint. A
// failing candidate is dropped silently; rejection is flow control, not an
// error.
package slider
