package input

import (
	"math"
	"time"
)

// Position represents a coordinate in the frontend's surface space.
type Position struct {
	X float64
	Y float64
}

// Equal returns true if two positions are equal.
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// Distance returns the Euclidean distance between two positions. Handle
// targeting picks the handle nearest to the press point by straight-line
// distance.
func (p Position) Distance(other Position) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// PointerEvent represents a mouse or touch input event.
type PointerEvent struct {
	// Position is the event coordinates in the frontend's surface space.
	Position Position

	// Button is the button or contact involved.
	Button Button

	// Action is the type of pointer action.
	Action Action

	// Modifiers are any keyboard modifiers held during the event.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewPointerEvent creates a pointer event with the current timestamp.
func NewPointerEvent(pos Position, button Button, action Action, mods Modifier) PointerEvent {
	return PointerEvent{
		Position:  pos,
		Button:    button,
		Action:    action,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// KeyEvent represents a keyboard input event directed at the focused
// handle. Action is ActionPress or ActionRelease; frontends whose platform
// never delivers key releases (terminals) synthesize a release after each
// press so completion bookkeeping still runs.
type KeyEvent struct {
	// Key identifies the key.
	Key Key

	// Action is ActionPress or ActionRelease.
	Action Action

	// Modifiers are any modifiers held during the event.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewKeyEvent creates a key event with the current timestamp.
func NewKeyEvent(key Key, action Action, mods Modifier) KeyEvent {
	return KeyEvent{
		Key:       key,
		Action:    action,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}
