package notifykit

import "errors"

var (
	// ErrInvalidScript is returned when a demo scenario cannot be decoded
	// or fails validation.
	ErrInvalidScript = errors.New("invalid demo script")
)
