package enum

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the root of every error returned by this package.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotEnum is returned when a type has no registered member set.
	ErrNotEnum = fmt.Errorf("%w: type is not a registered enum", ErrInvalidArgument)

	// ErrEmptyText is returned by strict parsing when the input text is empty.
	ErrEmptyText = fmt.Errorf("%w: enum representation is empty", ErrInvalidArgument)

	// ErrNoMatch is returned by strict parsing when no member matches the input text.
	ErrNoMatch = fmt.Errorf("%w: provided value is not a valid enum value", ErrInvalidArgument)

	// ErrInvalidMember is returned when a member set is declared incorrectly.
	ErrInvalidMember = fmt.Errorf("%w: invalid enum member", ErrInvalidArgument)

	// ErrAlreadyRegistered is returned when a type is registered twice.
	ErrAlreadyRegistered = fmt.Errorf("%w: enum type already registered", ErrInvalidArgument)
)
