package track

import (
	"math"

	"github.com/dshills/slidekit/internal/input"
)

// Rect is the bounding rectangle of the track in the frontend's surface
// space. X and Y locate the top-left corner; Width and Height are the
// extent.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Range is a min/max pair in domain space. In single-value mode only Max
// is meaningful; Min mirrors the configured floor.
type Range struct {
	Min float64
	Max float64
}

// Equal returns true if both endpoints match exactly.
func (r Range) Equal(other Range) bool {
	return r.Min == other.Min && r.Max == other.Max
}

// Percentages is a Range normalized to [0, 1] against the scale bounds.
type Percentages struct {
	Min float64
	Max float64
}

// Positions locates both handles relative to the track's top-left corner.
type Positions struct {
	Min input.Position
	Max input.Position
}

// Scale maps domain values onto the track. It is validated at construction
// time; a zero-span or negative-step scale never exists, so the
// transformations below cannot produce NaN or Inf.
type Scale struct {
	MinValue float64
	MaxValue float64
	Step     float64
}

// NewScale builds a Scale, rejecting degenerate bounds and non-positive
// steps.
func NewScale(minValue, maxValue, step float64) (Scale, error) {
	if minValue >= maxValue {
		return Scale{}, ErrInvalidBounds
	}
	if step <= 0 {
		return Scale{}, ErrInvalidStep
	}
	return Scale{MinValue: minValue, MaxValue: maxValue, Step: step}, nil
}

// Span returns the domain width of the scale.
func (s Scale) Span() float64 {
	return s.MaxValue - s.MinValue
}

// Contains returns true if v lies within the scale bounds, inclusive.
func (s Scale) Contains(v float64) bool {
	return v >= s.MinValue && v <= s.MaxValue
}

// Clamp restricts v to the scale bounds.
func (s Scale) Clamp(v float64) float64 {
	if v < s.MinValue {
		return s.MinValue
	}
	if v > s.MaxValue {
		return s.MaxValue
	}
	return v
}

// PercentageFromValue normalizes a domain value to [0, 1], clamped.
func (s Scale) PercentageFromValue(v float64) float64 {
	p := (v - s.MinValue) / s.Span()
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// PercentagesFromValues normalizes both endpoints of a Range.
func (s Scale) PercentagesFromValues(r Range) Percentages {
	return Percentages{
		Min: s.PercentageFromValue(r.Min),
		Max: s.PercentageFromValue(r.Max),
	}
}

// PositionsFromValues converts a Range to handle positions on the track.
// The track is horizontal, so Y is always 0.
func (s Scale) PositionsFromValues(r Range, rect Rect) Positions {
	p := s.PercentagesFromValues(r)
	return Positions{
		Min: input.Position{X: p.Min * rect.Width},
		Max: input.Position{X: p.Max * rect.Width},
	}
}

// ValueFromPosition is the inverse mapping: a track-relative position back
// to a domain value, clamped to the scale bounds. A zero-width rect maps
// everything to MinValue.
func (s Scale) ValueFromPosition(pos input.Position, rect Rect) float64 {
	if rect.Width <= 0 {
		return s.MinValue
	}
	v := s.MinValue + (pos.X/rect.Width)*s.Span()
	return s.Clamp(v)
}

// StepValue quantizes v to the nearest multiple of Step offset from
// MinValue.
func (s Scale) StepValue(v float64) float64 {
	return s.MinValue + math.Round((v-s.MinValue)/s.Step)*s.Step
}

// PositionFromPointer converts an event position in surface space to a
// position relative to the track's top-left corner. Y is fixed at 0 since
// only the horizontal axis carries meaning.
func PositionFromPointer(p input.Position, rect Rect) input.Position {
	return input.Position{X: p.X - rect.X}
}
