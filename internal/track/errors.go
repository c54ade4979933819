package track

import "errors"

// Sentinel errors for scale construction.
var (
	// ErrInvalidBounds is returned when MinValue >= MaxValue.
	ErrInvalidBounds = errors.New("track: min value must be less than max value")

	// ErrInvalidStep is returned when the step is zero or negative.
	ErrInvalidStep = errors.New("track: step must be positive")
)
