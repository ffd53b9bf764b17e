package dispatch

import "errors"

// Sentinel error kinds for this package.
var (
	ErrInvalidActivityType = errors.New("invalid activity type")
	ErrInvalidArity        = errors.New("unexpected number of parameters")
)
