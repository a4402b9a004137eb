package validatable

import (
	"strings"
)

// Bool is a Validatable holding a bool.
type Bool = Validatable[bool]

// BoolCodec accepts "true" and "false" in any case, surrounded by whitespace,
// and renders "True" or "False".
func BoolCodec() Codec[bool] {
	return Codec[bool]{
		Parse:   parseBool,
		Format:  formatBool,
		Compare: compareBool,
		Key:     formatBool,
	}
}

// NewBool returns a valid Bool holding value.
func NewBool(value bool) *Bool {
	return New(value, BoolCodec())
}

// BoolFromPtr returns a Bool holding *value, invalid when value is nil.
func BoolFromPtr(value *bool) *Bool {
	return FromPtr(value, BoolCodec())
}

// ParseBool parses text with BoolCodec and keeps text as the raw input.
func ParseBool(text string) *Bool {
	return FromText(text, BoolCodec())
}

func parseBool(text string) (bool, bool) {
	t := strings.TrimRight(strings.TrimSpace(text), "\x00")
	switch {
	case strings.EqualFold(t, "true"):
		return true, true
	case strings.EqualFold(t, "false"):
		return false, true
	}
	return false, false
}

func formatBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
