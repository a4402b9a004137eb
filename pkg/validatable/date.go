package validatable

import (
	"time"
)

// DateLayout is the only layout Date accepts and renders.
const DateLayout = "2006-01-02"

// Date is a Validatable holding a calendar date. Time of day is ignored when rendering.
type Date = Validatable[time.Time]

// DateCodec parses and renders DateLayout. Equality and ordering compare instants.
func DateCodec() Codec[time.Time] {
	return Codec[time.Time]{
		Parse: func(text string) (time.Time, bool) {
			t, err := time.Parse(DateLayout, text)
			return t, err == nil
		},
		Format: func(t time.Time) string {
			return t.Format(DateLayout)
		},
		Compare: time.Time.Compare,
		Key: func(t time.Time) string {
			return t.UTC().Format(time.RFC3339Nano)
		},
	}
}

// NewDate returns a valid Date holding value.
func NewDate(value time.Time) *Date {
	return New(value, DateCodec())
}

// DateFromPtr returns a Date holding *value, invalid when value is nil.
func DateFromPtr(value *time.Time) *Date {
	return FromPtr(value, DateCodec())
}

// ParseDate parses text with DateLayout and keeps text as the raw input.
func ParseDate(text string) *Date {
	return FromText(text, DateCodec())
}
