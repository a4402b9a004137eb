// Package locale provides the locale-aware primitive codec used by the
// validatable wrappers: parsing and rendering of integers, floating-point
// numbers and decimals for an explicitly supplied Locale.
//
// There is no ambient "current culture". Every operation receives the Locale
// it should honour, and the Invariant locale ("." decimal separator, ","
// group separator) is used wherever culture-independent behaviour is needed.
//
// # Locales
//
// A Locale is a plain value built from a BCP-47 tag. Its separators are
// derived from CLDR data through golang.org/x/text:
//
//	de := locale.New(language.German) // DecimalSeparator == ","
//	loc, err := locale.Parse("fr-FR")
//
// The process-wide default can be read from the environment (and an optional
// .env file) with FromEnv, which looks at EXTENSIONS_LOCALE.
//
// # Number styles
//
// ParseInt accepts surrounding whitespace, an optional leading sign and ASCII
// digits. ParseFloat32, ParseFloat64 and ParseDecimal additionally accept one
// decimal separator and an exponent, but reject group separators, so
// "-12,555.2" is not a valid invariant float. ParseNumber is the lenient
// variant that also skips group separators in the integer part.
//
// ParseDecimal stays within the range of a 96-bit decimal. Fractions are
// rounded to MaxDecimalScale digits and magnitudes above MaxDecimal are
// rejected. The exponent is checked before the digits are expanded, so text
// such as "1e2000000000" fails at once.
//
// # Rendering
//
// FormatFloat32, FormatFloat64 and FormatDecimal render with the "0.###"
// custom format: no grouping, the fraction rounded half away from zero to the
// requested precision and trailing zeros dropped.
//
//	locale.FormatDecimal(decimal.RequireFromString("-123456.789000000"), locale.Invariant, locale.DefaultDecimalPrecision)
//	// "-123456.789"
//
// # Error Handling
//
// Parse failures wrap ErrInvalidNumber and can be matched with errors.Is.
package locale
