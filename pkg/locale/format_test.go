package locale_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/extensions/pkg/locale"
)

func TestFormatInt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "44", locale.FormatInt(44))
	assert.Equal(t, "-1234567", locale.FormatInt(-1234567))
	assert.Equal(t, "0", locale.FormatInt(0))
}

func TestFormatDecimal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     string
		loc       locale.Locale
		precision int
		expected  string
	}{
		{name: "strips trailing zeros", value: "-123456.789000000", loc: locale.Invariant, precision: locale.DefaultDecimalPrecision, expected: "-123456.789"},
		{name: "uses locale separator", value: "-123456.789000000", loc: french, precision: locale.DefaultDecimalPrecision, expected: "-123456,789"},
		{name: "tiny value", value: "00000000.000000010000000", loc: locale.Invariant, precision: locale.DefaultDecimalPrecision, expected: "0.00000001"},
		{name: "integral value has no point", value: "12.000", loc: locale.Invariant, precision: locale.DefaultDecimalPrecision, expected: "12"},
		{name: "no grouping", value: "1234567.5", loc: locale.Invariant, precision: locale.DefaultDecimalPrecision, expected: "1234567.5"},
		{name: "rounds half away from zero", value: "2.345", loc: locale.Invariant, precision: 2, expected: "2.35"},
		{name: "rounds negative half away from zero", value: "-2.345", loc: locale.Invariant, precision: 2, expected: "-2.35"},
		{name: "zero precision", value: "2.5", loc: locale.Invariant, precision: 0, expected: "3"},
		{name: "negative precision treated as zero", value: "2.4", loc: locale.Invariant, precision: -3, expected: "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := locale.FormatDecimal(decimal.RequireFromString(tt.value), tt.loc, tt.precision)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatFloat(t *testing.T) {
	t.Parallel()

	t.Run("float32 uses shortest representation", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "44.372", locale.FormatFloat32(44.372, locale.Invariant, locale.DefaultFloatPrecision))
		assert.Equal(t, "0.00000001", locale.FormatFloat32(0.00000001, locale.Invariant, locale.DefaultFloatPrecision))
		assert.Equal(t, "12,5", locale.FormatFloat32(12.5, french, locale.DefaultFloatPrecision))
	})

	t.Run("float64", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "44.372", locale.FormatFloat64(44.372, locale.Invariant, locale.DefaultFloatPrecision))
		assert.Equal(t, "-12512.5", locale.FormatFloat64(-12512.5, locale.Invariant, locale.DefaultFloatPrecision))
		assert.Equal(t, "0.33", locale.FormatFloat64(1.0/3, locale.Invariant, 2))
	})

	t.Run("non-finite values", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "NaN", locale.FormatFloat64(math.NaN(), locale.Invariant, 2))
		assert.Equal(t, "Infinity", locale.FormatFloat64(math.Inf(1), locale.Invariant, 2))
		assert.Equal(t, "-Infinity", locale.FormatFloat32(float32(math.Inf(-1)), locale.Invariant, 2))
	})
}
