package validatable

import (
	"cmp"
	"fmt"

	"github.com/dmitrymomot/extensions/pkg/enum"
)

// Enum is a Validatable holding a member of a registered enum type.
type Enum[E enum.Integer] struct {
	*Validatable[E]
}

// EnumCodec resolves text through set and renders canonical member names.
// A nil set resolves nothing and renders decimal digits.
func EnumCodec[E enum.Integer](set *enum.Set[E]) Codec[E] {
	return Codec[E]{
		Parse: set.Resolve,
		Format: func(v E) string {
			if set == nil {
				return fmt.Sprintf("%d", v)
			}
			return set.Format(v)
		},
		Compare: cmp.Compare[E],
		Key: func(v E) string {
			return fmt.Sprintf("%d", v)
		},
	}
}

// NewEnum returns a valid Enum holding value, whether or not value is a declared member.
func NewEnum[E enum.Integer](value E) Enum[E] {
	return Enum[E]{New(value, registeredCodec[E]())}
}

// EnumFromPtr returns an Enum holding *value, invalid when value is nil.
func EnumFromPtr[E enum.Integer](value *E) Enum[E] {
	return Enum[E]{FromPtr(value, registeredCodec[E]())}
}

// ParseEnum resolves text against the registered members of E. Text for an
// unregistered type always yields an invalid instance.
func ParseEnum[E enum.Integer](text string) Enum[E] {
	return Enum[E]{FromText(text, registeredCodec[E]())}
}

// Equal reports whether e and other are the same instance, or are both valid
// and hold the same member.
func (e Enum[E]) Equal(other Enum[E]) bool {
	return e.Validatable.Equal(other.Validatable)
}

// Compare orders e relative to other with the policy of Validatable.Compare.
func (e Enum[E]) Compare(other Enum[E]) int {
	return e.Validatable.Compare(other.Validatable)
}

// CompareStrict orders e relative to other with the total order of
// Validatable.CompareStrict.
func (e Enum[E]) CompareStrict(other Enum[E]) int {
	return e.Validatable.CompareStrict(other.Validatable)
}

// StringValue returns the canonical member name, or ErrInvalidState.
func (e Enum[E]) StringValue() (string, error) {
	return e.Render()
}

func registeredCodec[E enum.Integer]() Codec[E] {
	// A nil set is handled by EnumCodec.
	set, _ := enum.Lookup[E]()
	return EnumCodec(set)
}
