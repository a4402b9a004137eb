// Package extensions is the root of a small toolkit for values that arrive as
// text and may fail to parse.
//
// The work happens in the sub-packages:
//
//   - pkg/validatable: Validatable[T] keeps the parsed value, whether parsing
//     succeeded, and the original text, with typed wrappers for bool, int,
//     float32, float64, decimal, date, UUID and registered enum types.
//   - pkg/enum: registration of integer enum types with names and
//     descriptions, and lenient or strict resolution of text to members.
//   - pkg/locale: locale-aware number parsing and formatting derived from
//     CLDR data, with the locale selectable through the environment.
//   - pkg/sanitizer: string normalization used by enum resolution.
//   - pkg/validator: rules that report unparsable or missing values as
//     field errors.
//
// Basic usage:
//
//	qty := validatable.ParseInt(r.FormValue("qty"))
//	if err := validator.Apply(
//		validator.RequiredParsed("qty", qty),
//		validator.ValidParsed("qty", qty),
//	); err != nil {
//		return err
//	}
//	n := qty.MustValue()
package extensions
