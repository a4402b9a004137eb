package locale

import "errors"

var (
	// ErrInvalidNumber is returned when text does not match the requested number style.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrInvalidLocale is returned when a locale tag cannot be parsed.
	ErrInvalidLocale = errors.New("invalid locale")

	// ErrParsingConfig is returned when environment variables cannot be parsed into Config.
	ErrParsingConfig = errors.New("failed to parse locale configuration")
)
