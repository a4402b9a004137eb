// Package sanitizer provides small, stateless string helpers for normalising
// user input before it is compared or looked up.
//
// The helpers fall into two groups:
//
//   - Normalisation – trimming, invariant case mapping and collapsing of
//     redundant whitespace (SuppressRedundantSpaces), as used by the enum
//     resolver when matching free-form text against member names.
//
//   - Search – diacritic- and case-insensitive containment checks
//     (ContainsInsensitive and friends), backed by Unicode normalisation from
//     golang.org/x/text.
//
// Case mapping uses the undetermined language so results never depend on the
// caller's locale. The higher-order Apply and Compose helpers build pipelines:
//
//	normalize := sanitizer.Compose(
//	    sanitizer.SuppressRedundantSpaces,
//	    sanitizer.ToLower,
//	)
//
//	normalize("  Value   Two ") // "value two"
//
// # Error handling
//
// None of the helpers returns an error.
//
// # Concurrency
//
// There is no package state; every helper is safe for concurrent use.
package sanitizer
