package locale

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type style uint8

const (
	allowSign style = 1 << iota
	allowDecimal
	allowExponent
	allowGroups
)

const (
	integerStyle = allowSign
	floatStyle   = allowSign | allowDecimal | allowExponent
	numberStyle  = floatStyle | allowGroups
)

// whitespace matches the characters .NET-style number parsing skips around
// the digits.
const whitespace = " \t\n\v\f\r"

// ParseInt parses a signed base-10 integer.
func ParseInt(s string, loc Locale) (int, error) {
	norm, err := normalize(s, loc, integerStyle)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseInt(norm, 10, strconv.IntSize)
	if err != nil {
		return 0, errors.Join(ErrInvalidNumber, err)
	}

	return int(v), nil
}

// ParseFloat32 parses a float32 without group separators.
func ParseFloat32(s string, loc Locale) (float32, error) {
	v, err := parseFloat(s, loc, floatStyle, 32)
	return float32(v), err
}

// ParseFloat64 parses a float64 without group separators.
func ParseFloat64(s string, loc Locale) (float64, error) {
	return parseFloat(s, loc, floatStyle, 64)
}

// ParseNumber parses a float64 and tolerates group separators in the integer part.
func ParseNumber(s string, loc Locale) (float64, error) {
	return parseFloat(s, loc, numberStyle, 64)
}

// ParseDecimal parses a decimal without group separators. The result is
// confined to the range of a 96-bit decimal: the fraction is rounded half away
// from zero to MaxDecimalScale digits and magnitudes above MaxDecimal are
// rejected. Exponents are checked before any digits are expanded.
func ParseDecimal(s string, loc Locale) (decimal.Decimal, error) {
	n, err := scan(s, loc, floatStyle)
	if err != nil {
		return decimal.Zero, err
	}

	digits := strings.TrimLeft(n.intPart+n.fracPart, "0")
	if digits == "" {
		return decimal.Zero, nil
	}

	exp, err := n.exponent()
	switch {
	case err != nil && strings.HasPrefix(n.exp, "-"):
		return decimal.Zero, nil
	case err != nil:
		return decimal.Zero, fmt.Errorf("%w: %q is out of range", ErrInvalidNumber, s)
	}

	// Count of integer digits in the value; zero or less below one.
	magnitude := int64(len(digits)) - int64(len(n.fracPart)) + exp
	switch {
	case magnitude > maxDecimalDigits:
		return decimal.Zero, fmt.Errorf("%w: %q is out of range", ErrInvalidNumber, s)
	case magnitude < -MaxDecimalScale:
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Zero, errors.Join(ErrInvalidNumber, err)
	}

	d = d.Round(MaxDecimalScale)
	if d.Abs().GreaterThan(MaxDecimal) {
		return decimal.Zero, fmt.Errorf("%w: %q is out of range", ErrInvalidNumber, s)
	}

	return d, nil
}

func parseFloat(s string, loc Locale, st style, bitSize int) (float64, error) {
	if v, ok := special(s); ok {
		return v, nil
	}

	norm, err := normalize(s, loc, st)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseFloat(norm, bitSize)
	if err != nil {
		return 0, errors.Join(ErrInvalidNumber, err)
	}

	return v, nil
}

func special(s string) (float64, bool) {
	switch t := strings.Trim(s, whitespace); {
	case strings.EqualFold(t, "NaN"):
		return math.NaN(), true
	case strings.EqualFold(t, "Infinity"), strings.EqualFold(t, "+Infinity"), t == "∞":
		return math.Inf(1), true
	case strings.EqualFold(t, "-Infinity"), t == "-∞":
		return math.Inf(-1), true
	}
	return 0, false
}

// scanned is a number split into its parts, in invariant syntax.
type scanned struct {
	neg      bool
	intPart  string
	fracPart string
	exp      string
}

// exponent returns the exponent as a number. Values outside int32 fail.
func (n scanned) exponent() (int64, error) {
	if n.exp == "" {
		return 0, nil
	}
	return strconv.ParseInt(n.exp, 10, 32)
}

// String assembles the parts into the syntax understood by strconv and decimal.
func (n scanned) String() string {
	var b strings.Builder
	if n.neg {
		b.WriteByte('-')
	}
	if n.intPart == "" {
		b.WriteByte('0')
	} else {
		b.WriteString(n.intPart)
	}
	if n.fracPart != "" {
		b.WriteByte('.')
		b.WriteString(n.fracPart)
	}
	if n.exp != "" {
		b.WriteByte('e')
		b.WriteString(n.exp)
	}
	return b.String()
}

// normalize checks s against st and rewrites it into invariant syntax.
func normalize(s string, loc Locale, st style) (string, error) {
	n, err := scan(s, loc, st)
	if err != nil {
		return "", err
	}
	return n.String(), nil
}

func scan(s string, loc Locale, st style) (scanned, error) {
	t := strings.Trim(s, whitespace)
	if t == "" {
		return scanned{}, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}

	var (
		neg        bool
		intPart    strings.Builder
		fracPart   strings.Builder
		expPart    string
		sawDecimal bool
		dec        = loc.decimal()
		group      = loc.GroupSeparator
	)

	i := 0
	if t[0] == '+' || t[0] == '-' {
		if st&allowSign == 0 {
			return scanned{}, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
		}
		neg = t[0] == '-'
		i++
	}

	for i < len(t) {
		c := t[i]
		switch {
		case c >= '0' && c <= '9':
			if sawDecimal {
				fracPart.WriteByte(c)
			} else {
				intPart.WriteByte(c)
			}
			i++
		case st&allowDecimal != 0 && !sawDecimal && strings.HasPrefix(t[i:], dec):
			sawDecimal = true
			i += len(dec)
		case st&allowGroups != 0 && !sawDecimal && intPart.Len() > 0 && group != "" && strings.HasPrefix(t[i:], group):
			i += len(group)
		case st&allowExponent != 0 && (c == 'e' || c == 'E') && intPart.Len()+fracPart.Len() > 0:
			exp, ok := exponent(t[i+1:])
			if !ok {
				return scanned{}, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
			}
			expPart = exp
			i = len(t)
		default:
			return scanned{}, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
		}
	}

	if intPart.Len()+fracPart.Len() == 0 {
		return scanned{}, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}

	return scanned{
		neg:      neg,
		intPart:  intPart.String(),
		fracPart: fracPart.String(),
		exp:      expPart,
	}, nil
}

func exponent(s string) (string, bool) {
	digits := s
	if digits != "" && (digits[0] == '+' || digits[0] == '-') {
		digits = digits[1:]
	}
	if digits == "" {
		return "", false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return "", false
		}
	}
	return s, true
}
