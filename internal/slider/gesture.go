package slider

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Gesture is the scoped resource representing one live pointer
// interaction, from press to release. It stands in for the global
// move/release listeners a DOM implementation would attach: whoever holds
// the Gesture is responsible for ending it, and teardown is idempotent so
// deferred cleanup is always safe.
type Gesture struct {
	id    string
	ctrl  *Controller
	ended atomic.Bool
}

func newGesture(c *Controller) *Gesture {
	return &Gesture{
		id:   uuid.NewString(),
		ctrl: c,
	}
}

// ID returns the unique gesture identifier.
func (g *Gesture) ID() string {
	return g.id
}

// Active returns true until the gesture has been ended or cancelled.
func (g *Gesture) Active() bool {
	return !g.ended.Load()
}

// End releases the gesture, firing the completion notification if the
// value changed since the press. Calling End more than once is a no-op.
func (g *Gesture) End() {
	if g.ended.CompareAndSwap(false, true) {
		g.ctrl.finishGesture(g, true)
	}
}

// Cancel releases the gesture without firing the completion
// notification. Use it on teardown paths where the interaction is being
// abandoned rather than finished.
func (g *Gesture) Cancel() {
	if g.ended.CompareAndSwap(false, true) {
		g.ctrl.finishGesture(g, false)
	}
}

// markEnded flips the ended flag without going back through the
// controller. Used when the controller itself tears the gesture down.
func (g *Gesture) markEnded() {
	g.ended.Store(true)
}
