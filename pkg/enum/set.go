package enum

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dmitrymomot/extensions/pkg/sanitizer"
)

// Integer is satisfied by every type whose underlying type is an integer.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Member declares one enum member. An empty Description means none is attached.
type Member[E Integer] struct {
	Value       E
	Name        string
	Description string
}

// Set is the immutable member table of one enum type.
type Set[E Integer] struct {
	members []Member[E]
	lowered []string
	byValue map[E]int
}

var normalize = sanitizer.Compose(sanitizer.ToLower, sanitizer.SuppressRedundantSpaces)

// NewSet validates members and builds a Set. Names must be non-empty, free of
// whitespace and unique. Several names may share a value; the first one
// declared is canonical for that value.
func NewSet[E Integer](members ...Member[E]) (*Set[E], error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("%w: no members declared", ErrInvalidMember)
	}

	s := &Set[E]{
		members: make([]Member[E], len(members)),
		lowered: make([]string, len(members)),
		byValue: make(map[E]int, len(members)),
	}
	seen := make(map[string]struct{}, len(members))

	for i, m := range members {
		if m.Name == "" || strings.ContainsFunc(m.Name, unicode.IsSpace) {
			return nil, fmt.Errorf("%w: name %q", ErrInvalidMember, m.Name)
		}
		if _, dup := seen[m.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidMember, m.Name)
		}
		seen[m.Name] = struct{}{}

		s.members[i] = m
		s.lowered[i] = sanitizer.ToLower(m.Name)
		if _, ok := s.byValue[m.Value]; !ok {
			s.byValue[m.Value] = i
		}
	}

	return s, nil
}

// MustNewSet is like NewSet but panics on error.
func MustNewSet[E Integer](members ...Member[E]) *Set[E] {
	s, err := NewSet(members...)
	if err != nil {
		panic(err)
	}
	return s
}

// Members returns the members in declaration order.
func (s *Set[E]) Members() []Member[E] {
	return append([]Member[E](nil), s.members...)
}

// Values returns the member values in declaration order.
func (s *Set[E]) Values() []E {
	values := make([]E, len(s.members))
	for i, m := range s.members {
		values[i] = m.Value
	}
	return values
}

// Contains reports whether v is the value of a declared member.
func (s *Set[E]) Contains(v E) bool {
	_, ok := s.byValue[v]
	return ok
}

// Name returns the canonical name of v.
func (s *Set[E]) Name(v E) (string, bool) {
	m, ok := s.member(v)
	if !ok {
		return "", false
	}
	return m.Name, true
}

// Description returns the description attached to v. It reports false when v
// is not declared or has no description.
func (s *Set[E]) Description(v E) (string, bool) {
	m, ok := s.member(v)
	if !ok || m.Description == "" {
		return "", false
	}
	return m.Description, true
}

// StringValue renders v preferring its description over its name. Undeclared
// values render as their decimal digits.
func (s *Set[E]) StringValue(v E) string {
	m, ok := s.member(v)
	switch {
	case !ok:
		return fmt.Sprintf("%d", v)
	case m.Description != "":
		return m.Description
	default:
		return m.Name
	}
}

// Format renders v as its canonical name, or its decimal digits when undeclared.
func (s *Set[E]) Format(v E) string {
	if name, ok := s.Name(v); ok {
		return name
	}
	return fmt.Sprintf("%d", v)
}

// Resolve maps text to a member value. See the package documentation for the
// matching order.
func (s *Set[E]) Resolve(text string) (E, bool) {
	var zero E
	if s == nil || text == "" {
		return zero, false
	}

	for _, m := range s.members {
		if m.Name == text {
			return m.Value, true
		}
	}

	lowered := normalize(text)
	for i, m := range s.members {
		if s.lowered[i] == lowered {
			return m.Value, true
		}
	}

	for _, m := range s.members {
		if m.Description != "" && m.Description == text {
			return m.Value, true
		}
	}

	return zero, false
}

// Parse is the strict variant of Resolve.
func (s *Set[E]) Parse(text string) (E, error) {
	var zero E
	if text == "" {
		return zero, ErrEmptyText
	}

	v, ok := s.Resolve(text)
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrNoMatch, text)
	}

	return v, nil
}

func (s *Set[E]) member(v E) (Member[E], bool) {
	i, ok := s.byValue[v]
	if !ok {
		return Member[E]{}, false
	}
	return s.members[i], true
}
