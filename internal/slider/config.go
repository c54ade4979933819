package slider

import (
	"fmt"

	"github.com/dshills/slidekit/internal/track"
)

// Mode is the typed discriminant between single-value and range
// operation. It is decided once at construction and never re-inspected
// from the value's shape.
type Mode uint8

const (
	// ModeNone is the zero value; configurations must pick a mode
	// explicitly.
	ModeNone Mode = iota
	// ModeSingle operates one handle selecting a scalar value.
	ModeSingle
	// ModeRange operates two handles selecting a min/max pair.
	ModeRange
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeRange:
		return "range"
	default:
		return "none"
	}
}

// Handle identifies one endpoint of the selection.
type Handle uint8

const (
	// HandleNone indicates no handle.
	HandleNone Handle = iota
	// HandleMin is the lower endpoint handle.
	HandleMin
	// HandleMax is the upper endpoint handle. In ModeSingle it is the
	// only handle.
	HandleMax
)

// String returns a string representation of the handle.
func (h Handle) String() string {
	switch h {
	case HandleMin:
		return "min"
	case HandleMax:
		return "max"
	default:
		return "none"
	}
}

// Value is the host-facing shape of a committed value. In ModeSingle only
// Max carries meaning; use Scalar.
type Value struct {
	Mode Mode
	Min  float64
	Max  float64
}

// Scalar returns the single-mode value.
func (v Value) Scalar() float64 {
	return v.Max
}

// Range returns the value as a track.Range.
func (v Value) Range() track.Range {
	return track.Range{Min: v.Min, Max: v.Max}
}

// Config is the host-owned controller configuration. Hosts re-supply it
// on every render via Apply; the controller never mutates it.
type Config struct {
	// Mode selects single-value or range operation. Required.
	Mode Mode

	// MinValue and MaxValue are the domain bounds. MinValue must be
	// strictly less than MaxValue.
	MinValue float64
	MaxValue float64

	// Step is the quantization granularity. Must be positive.
	Step float64

	// Value is the controlled current value. When nil the controller
	// falls back to DefaultValue and tracks commits itself.
	Value *track.Range

	// DefaultValue is the initial value for uncontrolled operation.
	DefaultValue track.Range

	// Disabled suppresses all mutation, pointer and keyboard alike.
	Disabled bool

	// OnChange receives every accepted candidate. Required.
	OnChange func(Value)

	// OnChangeComplete receives the final value once per completed
	// gesture, only if it changed since gesture start. Optional.
	OnChangeComplete func(Value)

	// TrackRect supplies the track's bounding rectangle. It is called per
	// interaction, never cached, since layout can change between
	// gestures. Required.
	TrackRect func() track.Rect
}

// Validate checks the configuration and returns the derived scale.
// Configuration errors are rejected here, before any interaction, so the
// transformations can never divide by a zero span.
func (c Config) Validate() (track.Scale, error) {
	if c.Mode != ModeSingle && c.Mode != ModeRange {
		return track.Scale{}, ErrInvalidMode
	}
	scale, err := track.NewScale(c.MinValue, c.MaxValue, c.Step)
	if err != nil {
		return track.Scale{}, fmt.Errorf("slider: %w", err)
	}
	if c.OnChange == nil {
		return track.Scale{}, ErrMissingOnChange
	}
	if c.TrackRect == nil {
		return track.Scale{}, ErrMissingTrackRect
	}

	r := c.initialRange(scale)
	if !withinRange(c.Mode, scale, r) {
		return track.Scale{}, fmt.Errorf("%w: %+v", ErrValueOutOfRange, r)
	}
	return scale, nil
}

// initialRange resolves the current range from the controlled value or
// the fallback default. ModeSingle synthesizes Min from the floor.
func (c Config) initialRange(scale track.Scale) track.Range {
	r := c.DefaultValue
	if c.Value != nil {
		r = *c.Value
	}
	if c.Mode == ModeSingle {
		r.Min = scale.MinValue
	}
	return r
}

// withinRange checks the range invariants for the given mode:
// bounds containment always, and strict min < max in ModeRange.
func withinRange(mode Mode, scale track.Scale, r track.Range) bool {
	if mode == ModeSingle {
		return scale.Contains(r.Max)
	}
	return scale.Contains(r.Min) && scale.Contains(r.Max) && r.Min < r.Max
}
