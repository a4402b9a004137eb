// Package enum maps free-form text to members of integer-backed enum types.
//
// Go has no enum declarations to reflect over, so every enum type registers
// its members once, typically at package initialisation:
//
//	type Status int
//
//	const (
//	    StatusActive Status = iota
//	    StatusOnHold
//	)
//
//	var statuses = enum.MustRegister(
//	    enum.Member[Status]{Value: StatusActive, Name: "Active"},
//	    enum.Member[Status]{Value: StatusOnHold, Name: "OnHold", Description: "On hold"},
//	)
//
// A member has a canonical Name (its identifier) and an optional
// human-readable Description.
//
// # Resolution
//
// Resolve tries, in order:
//
//  1. an exact, case-sensitive match against member names;
//  2. a match of the trimmed, lower-cased, space-collapsed text against the
//     lower-cased member names;
//  3. an exact, case-sensitive match of the original text against member
//     descriptions.
//
// Empty text never resolves. Note that step 3 uses the text as given, so
// "  on hold" does not match the description "On hold" while "  onhold  "
// matches the name "OnHold".
//
// Parse is the strict variant: it returns an error wrapping ErrInvalidArgument
// for empty text, for text that matches nothing, and for enum types that were
// never registered.
//
// # Registry
//
// The package-level functions (Resolve, Parse, Values, Description,
// StringValue) look the Set up by type. A Set can also be built and used
// directly with NewSet when no global registration is wanted.
//
// Registration takes a write lock; lookups take a read lock, so registered
// sets may be used from multiple goroutines.
package enum
