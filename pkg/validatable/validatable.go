package validatable

import (
	"cmp"
	"log/slog"

	"github.com/cespare/xxhash/v2"
)

// Validatable holds a value of type T that may or may not have been obtained.
// Instances are immutable once constructed.
type Validatable[T any] struct {
	value  T
	valid  bool
	raw    string
	hasRaw bool
	codec  Codec[T]
}

// New returns a valid instance holding value.
func New[T any](value T, codec Codec[T]) *Validatable[T] {
	return &Validatable[T]{value: value, valid: true, codec: codec}
}

// FromPtr returns a valid instance holding *value, or an invalid instance
// without raw text when value is nil.
func FromPtr[T any](value *T, codec Codec[T]) *Validatable[T] {
	if value == nil {
		return &Validatable[T]{codec: codec}
	}
	return New(*value, codec)
}

// FromText parses text with codec. The text is kept whether parsing succeeds or not.
func FromText[T any](text string, codec Codec[T]) *Validatable[T] {
	v := &Validatable[T]{raw: text, hasRaw: true, codec: codec}
	if parsed, ok := codec.Parse(text); ok {
		v.value = parsed
		v.valid = true
	}
	return v
}

// IsValid reports whether a value is held.
func (v *Validatable[T]) IsValid() bool {
	return v != nil && v.valid
}

// Value returns the held value or ErrInvalidState.
func (v *Validatable[T]) Value() (T, error) {
	if !v.IsValid() {
		var zero T
		return zero, ErrInvalidState
	}
	return v.value, nil
}

// MustValue returns the held value and panics with ErrInvalidState when there is none.
func (v *Validatable[T]) MustValue() T {
	value, err := v.Value()
	if err != nil {
		panic(err)
	}
	return value
}

// RawText returns the text the instance was parsed from. It reports false
// when the instance was built from a value.
func (v *Validatable[T]) RawText() (string, bool) {
	if v == nil {
		return "", false
	}
	return v.raw, v.hasRaw
}

// Render returns the canonical text of the held value or ErrInvalidState.
// There is no fallback to the raw text.
func (v *Validatable[T]) Render() (string, error) {
	if !v.IsValid() {
		return "", ErrInvalidState
	}
	return v.codec.Format(v.value), nil
}

// MustRender is like Render but panics with ErrInvalidState.
func (v *Validatable[T]) MustRender() string {
	s, err := v.Render()
	if err != nil {
		panic(err)
	}
	return s
}

// Equal reports whether v and other are the same instance, or are both valid
// and hold equal values.
func (v *Validatable[T]) Equal(other *Validatable[T]) bool {
	if v == nil || other == nil {
		return false
	}
	if v == other {
		return true
	}
	if !v.valid || !other.valid {
		return false
	}
	return v.codec.Compare(v.value, other.value) == 0
}

// Is reports whether v is valid and holds value. A nil receiver never matches.
func (v *Validatable[T]) Is(value T) bool {
	if !v.IsValid() {
		return false
	}
	return v.codec.Compare(v.value, value) == 0
}

// IsNot is the negation of Is.
func (v *Validatable[T]) IsNot(value T) bool {
	return !v.Is(value)
}

// Hash returns a hash of the held value, or of the raw text when invalid.
// An invalid instance without raw text hashes like the empty string.
func (v *Validatable[T]) Hash() uint64 {
	switch {
	case v == nil:
		return xxhash.Sum64String("")
	case v.valid:
		return xxhash.Sum64String(v.codec.Key(v.value))
	default:
		return xxhash.Sum64String(v.raw)
	}
}

// Compare orders v relative to other:
//
//	other nil or invalid  -> -1 (whatever v is)
//	v invalid             -> +1
//	both valid            -> Codec.Compare
func (v *Validatable[T]) Compare(other *Validatable[T]) int {
	if !other.IsValid() {
		return -1
	}
	if !v.IsValid() {
		return 1
	}
	return v.codec.Compare(v.value, other.value)
}

// CompareValue compares v with a bare value, which is always valid.
func (v *Validatable[T]) CompareValue(value T) int {
	if !v.IsValid() {
		return 1
	}
	return v.codec.Compare(v.value, value)
}

// CompareStrict is a total order: invalid instances (nil included) sort
// before valid ones and among themselves by raw text.
func (v *Validatable[T]) CompareStrict(other *Validatable[T]) int {
	switch vv, ov := v.IsValid(), other.IsValid(); {
	case !vv && !ov:
		a, _ := v.RawText()
		b, _ := other.RawText()
		return cmp.Compare(a, b)
	case !vv:
		return -1
	case !ov:
		return 1
	default:
		return v.codec.Compare(v.value, other.value)
	}
}

// LogValue implements slog.LogValuer.
func (v *Validatable[T]) LogValue() slog.Value {
	if v == nil {
		return slog.GroupValue(slog.Bool("valid", false))
	}

	attrs := make([]slog.Attr, 0, 3)
	attrs = append(attrs, slog.Bool("valid", v.valid))
	if v.valid {
		attrs = append(attrs, slog.String("value", v.codec.Format(v.value)))
	}
	if v.hasRaw {
		attrs = append(attrs, slog.String("raw", v.raw))
	}

	return slog.GroupValue(attrs...)
}
