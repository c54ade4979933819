package slider

import "errors"

// Sentinel errors for controller configuration.
var (
	// ErrInvalidMode is returned when the mode is unset or unknown.
	ErrInvalidMode = errors.New("slider: mode must be ModeSingle or ModeRange")

	// ErrModeChanged is returned when Apply attempts to switch the mode of
	// a live controller. The mode is fixed for the controller's lifetime.
	ErrModeChanged = errors.New("slider: mode cannot change after construction")

	// ErrMissingOnChange is returned when no change callback is configured.
	ErrMissingOnChange = errors.New("slider: OnChange callback is required")

	// ErrMissingTrackRect is returned when no track geometry supplier is
	// configured.
	ErrMissingTrackRect = errors.New("slider: TrackRect supplier is required")

	// ErrValueOutOfRange is returned when the initial or controlled value
	// violates the range invariants.
	ErrValueOutOfRange = errors.New("slider: value violates range invariants")
)
