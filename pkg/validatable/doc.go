// Package validatable provides value types that hold a parsed primitive
// together with the text it was parsed from and a validity flag.
//
// A Validatable[T] is created in one of three ways:
//
//	validatable.NewInt(44)            // always valid, no raw text
//	validatable.IntFromPtr(nil)       // invalid, no raw text
//	validatable.ParseInt("BadValue")  // invalid, RawText() == "BadValue"
//
// Parsing never fails loudly: malformed input produces an invalid instance that
// remembers the text so a validation layer can echo it back to the user. Only
// reading the value of an invalid instance is an error:
//
//	v := validatable.ParseInt(input)
//	if !v.IsValid() {
//	    raw, _ := v.RawText()
//	    return fmt.Errorf("%q is not a number", raw)
//	}
//	n := v.MustValue()
//
// # Typed wrappers
//
// Each supported primitive has a Codec that fixes its parse and render rules:
//
//   - Bool     – "true"/"false" in any case; renders "True"/"False".
//   - Int      – optional sign and digits; renders plain digits.
//   - Float    – float32, invariant culture, no group separators.
//   - Float64  – float64, invariant culture, group separators tolerated.
//   - Decimal  – github.com/shopspring/decimal, invariant culture, no group separators.
//   - Date     – exact "2006-01-02" layout.
//   - Enum[E]  – resolved through package enum; renders the canonical name.
//   - UUID     – github.com/google/uuid.
//
// Numeric renderings strip trailing zeros: a Decimal holding 0.00000001000
// renders as "0.00000001". Locale-specific codecs are available through
// DecimalCodec, FloatCodec and Float64Codec.
//
// # Equality and ordering
//
// Two instances are Equal when both are valid and hold equal values. An invalid
// instance is equal only to itself. Hash is consistent with Equal.
//
// Compare keeps a deliberately asymmetric policy: an invalid or nil argument
// always makes the receiver "less", unless the receiver is invalid and the
// argument valid. The relation is therefore not a total order; use
// CompareStrict, which puts invalid instances first and orders them by raw
// text, when sorting mixed slices.
//
// # Logging
//
// Validatable implements slog.LogValuer and logs as a group with "valid",
// "value" and "raw" keys.
package validatable
