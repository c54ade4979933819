package input

// Key identifies a keyboard key relevant to slider interaction.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Arrow keys adjust the focused handle.
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// KeyOther is any key the slider does not act on. Frontends may map
	// everything unrecognized here rather than enumerating their own key
	// space.
	KeyOther
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyOther:
		return "Other"
	default:
		return "None"
	}
}

// IsArrow returns true for the four arrow keys.
func (k Key) IsArrow() bool {
	return k == KeyUp || k == KeyDown || k == KeyLeft || k == KeyRight
}

// IsIncrement returns true for keys that move the focused handle toward
// the upper bound (Right and Up).
func (k Key) IsIncrement() bool {
	return k == KeyRight || k == KeyUp
}

// IsDecrement returns true for keys that move the focused handle toward
// the lower bound (Left and Down).
func (k Key) IsDecrement() bool {
	return k == KeyLeft || k == KeyDown
}
