// Package validator turns checks on parsed values into translation-friendly
// field errors.
//
// A Rule pairs a Check function with the ValidationError reported when it
// fails. Apply evaluates rules in order and aggregates the failures into a
// ValidationErrors slice, which implements error and matches
// ErrValidationFailed under errors.Is.
//
// The rules in this package inspect values built by the validatable package,
// so an input that could not be parsed is reported against its field with the
// offending text instead of being silently dropped:
//
//	age := validatable.ParseInt(form.Get("age"))
//	kind := validatable.ParseEnum[Kind](form.Get("kind"))
//
//	err := validator.Apply(
//	    validator.RequiredParsed("age", age),
//	    validator.ValidParsed("age", age),
//	    validator.ValidParsed("kind", kind),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // render verrs.Get(field)
//	    }
//	}
//
// Every exported rule constructor returns a fresh Rule; the package keeps no
// state and is safe for concurrent use.
package validator
