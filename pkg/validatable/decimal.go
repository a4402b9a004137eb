package validatable

import (
	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/extensions/pkg/locale"
)

// Decimal is a Validatable holding an arbitrary-precision decimal.
type Decimal = Validatable[decimal.Decimal]

// DecimalCodec parses decimals in loc without group separators and renders
// them with trailing zeros stripped.
func DecimalCodec(loc locale.Locale) Codec[decimal.Decimal] {
	return Codec[decimal.Decimal]{
		Parse: func(text string) (decimal.Decimal, bool) {
			v, err := locale.ParseDecimal(text, loc)
			return v, err == nil
		},
		Format: func(v decimal.Decimal) string {
			return locale.FormatDecimal(v, loc, locale.DefaultDecimalPrecision)
		},
		Compare: func(a, b decimal.Decimal) int {
			return a.Cmp(b)
		},
		// String drops trailing zeros, so 1.5 and 1.50 share a key.
		Key: decimal.Decimal.String,
	}
}

// NewDecimal returns a valid Decimal holding value. The value is not range checked.
func NewDecimal(value decimal.Decimal) *Decimal {
	return New(value, DecimalCodec(locale.Invariant))
}

// DecimalFromPtr returns a Decimal holding *value, invalid when value is nil.
func DecimalFromPtr(value *decimal.Decimal) *Decimal {
	return FromPtr(value, DecimalCodec(locale.Invariant))
}

// ParseDecimal parses text in the invariant locale and keeps text as the raw input.
// Text outside the range of locale.ParseDecimal yields an invalid instance.
func ParseDecimal(text string) *Decimal {
	return FromText(text, DecimalCodec(locale.Invariant))
}
