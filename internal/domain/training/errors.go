package training

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrInvalidDuration is returned when a training lasts zero or negative hours.
	// Every speed formula divides by the duration.
	ErrInvalidDuration = errors.New("training duration must be positive")
	// ErrInvalidParameter is returned for out-of-range sensor values.
	ErrInvalidParameter = errors.New("invalid training parameter")
)
