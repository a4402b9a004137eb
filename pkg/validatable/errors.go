package validatable

import "errors"

// ErrInvalidState is returned when the value of an invalid instance is read or rendered.
var ErrInvalidState = errors.New("invalid state: value is not valid")
