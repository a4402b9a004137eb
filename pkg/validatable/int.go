package validatable

import (
	"cmp"

	"github.com/dmitrymomot/extensions/pkg/locale"
)

// Int is a Validatable holding an int. Its range follows the platform's int:
// 32 bits on 32-bit builds, 64 bits otherwise. Text outside that range is invalid.
type Int = Validatable[int]

// IntCodec parses an optionally signed base-10 integer and renders plain digits.
func IntCodec() Codec[int] {
	return Codec[int]{
		Parse: func(text string) (int, bool) {
			v, err := locale.ParseInt(text, locale.Invariant)
			return v, err == nil
		},
		Format:  locale.FormatInt,
		Compare: cmp.Compare[int],
		Key:     locale.FormatInt,
	}
}

// NewInt returns a valid Int holding value.
func NewInt(value int) *Int {
	return New(value, IntCodec())
}

// IntFromPtr returns an Int holding *value, invalid when value is nil.
func IntFromPtr(value *int) *Int {
	return FromPtr(value, IntCodec())
}

// ParseInt parses text with IntCodec and keeps text as the raw input.
func ParseInt(text string) *Int {
	return FromText(text, IntCodec())
}
