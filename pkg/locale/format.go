package locale

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxDecimalScale is the number of fractional digits a 96-bit decimal can hold.
// ParseDecimal rounds to it.
const MaxDecimalScale = 28

// maxDecimalDigits is the number of integer digits in MaxDecimal.
const maxDecimalDigits = 29

// MaxDecimal is the largest magnitude ParseDecimal accepts, 2^96-1.
var MaxDecimal = decimal.RequireFromString("79228162514264337593543950335")

const (
	// DefaultDecimalPrecision keeps every fractional digit ParseDecimal produces,
	// so rendered decimals parse back to the same value.
	DefaultDecimalPrecision = MaxDecimalScale

	// DefaultFloatPrecision is the number of fractional digits kept when rendering floats.
	DefaultFloatPrecision = 15
)

// FormatInt renders v as plain digits with an optional leading minus sign.
func FormatInt(v int) string {
	return strconv.Itoa(v)
}

// FormatDecimal renders v without grouping, rounded to precision fractional
// digits with trailing zeros removed.
func FormatDecimal(v decimal.Decimal, loc Locale, precision int) string {
	if precision < 0 {
		precision = 0
	}
	return localize(v.Round(int32(precision)).String(), loc)
}

// FormatFloat32 renders v like FormatDecimal, starting from the shortest
// decimal representation that round-trips to the same float32.
func FormatFloat32(v float32, loc Locale, precision int) string {
	if s, ok := nonFinite(float64(v)); ok {
		return s
	}
	return FormatDecimal(decimal.NewFromFloat32(v), loc, precision)
}

// FormatFloat64 is the float64 counterpart of FormatFloat32.
func FormatFloat64(v float64, loc Locale, precision int) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	return FormatDecimal(decimal.NewFromFloat(v), loc, precision)
}

func nonFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "Infinity", true
	case math.IsInf(v, -1):
		return "-Infinity", true
	}
	return "", false
}

func localize(s string, loc Locale) string {
	dec := loc.decimal()
	if dec == "." {
		return s
	}
	return strings.Replace(s, ".", dec, 1)
}
