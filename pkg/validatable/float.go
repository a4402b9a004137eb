package validatable

import (
	"cmp"
	"math"
	"strconv"

	"github.com/dmitrymomot/extensions/pkg/locale"
)

// Float is a Validatable holding a float32.
type Float = Validatable[float32]

// Float64 is a Validatable holding a float64.
type Float64 = Validatable[float64]

// FloatCodec parses float32 values in loc without group separators and
// renders them with trailing zeros stripped.
func FloatCodec(loc locale.Locale) Codec[float32] {
	return Codec[float32]{
		Parse: func(text string) (float32, bool) {
			v, err := locale.ParseFloat32(text, loc)
			return v, err == nil
		},
		Format: func(v float32) string {
			return locale.FormatFloat32(v, loc, locale.DefaultFloatPrecision)
		},
		Compare: cmp.Compare[float32],
		Key: func(v float32) string {
			return floatKey(float64(v))
		},
	}
}

// Float64Codec parses float64 values in loc. Unlike FloatCodec it tolerates
// group separators, so "-12,512.5" is accepted in the invariant locale.
func Float64Codec(loc locale.Locale) Codec[float64] {
	return Codec[float64]{
		Parse: func(text string) (float64, bool) {
			v, err := locale.ParseNumber(text, loc)
			return v, err == nil
		},
		Format: func(v float64) string {
			return locale.FormatFloat64(v, loc, locale.DefaultFloatPrecision)
		},
		Compare: cmp.Compare[float64],
		Key:     floatKey,
	}
}

// NewFloat returns a valid Float holding value.
func NewFloat(value float32) *Float {
	return New(value, FloatCodec(locale.Invariant))
}

// FloatFromPtr returns a Float holding *value, invalid when value is nil.
func FloatFromPtr(value *float32) *Float {
	return FromPtr(value, FloatCodec(locale.Invariant))
}

// ParseFloat parses text in the invariant locale and keeps text as the raw input.
func ParseFloat(text string) *Float {
	return FromText(text, FloatCodec(locale.Invariant))
}

// NewFloat64 returns a valid Float64 holding value.
func NewFloat64(value float64) *Float64 {
	return New(value, Float64Codec(locale.Invariant))
}

// Float64FromPtr returns a Float64 holding *value, invalid when value is nil.
func Float64FromPtr(value *float64) *Float64 {
	return FromPtr(value, Float64Codec(locale.Invariant))
}

// ParseFloat64 parses text in the invariant locale and keeps text as the raw input.
func ParseFloat64(text string) *Float64 {
	return FromText(text, Float64Codec(locale.Invariant))
}

// floatKey agrees with cmp.Compare: both zeros share a key, as do all NaNs.
func floatKey(v float64) string {
	switch {
	case v == 0:
		return "0"
	case math.IsNaN(v):
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
