package validatable

import (
	"github.com/dmitrymomot/extensions/pkg/enum"
)

// ValidValues returns the values of the valid items, in order.
func ValidValues[T any](items []*Validatable[T]) []T {
	values := make([]T, 0, len(items))
	for _, item := range items {
		if item.IsValid() {
			values = append(values, item.value)
		}
	}
	return values
}

// ContainsValue reports whether a valid item holds value.
func ContainsValue[T any](items []*Validatable[T], value T) bool {
	for _, item := range items {
		if item.Is(value) {
			return true
		}
	}
	return false
}

// EnumValues returns the members held by the valid items, in order.
func EnumValues[E enum.Integer](items []Enum[E]) []E {
	values := make([]E, 0, len(items))
	for _, item := range items {
		if item.IsValid() {
			values = append(values, item.value)
		}
	}
	return values
}

// ContainsEnum reports whether a valid item holds value.
func ContainsEnum[E enum.Integer](items []Enum[E], value E) bool {
	for _, item := range items {
		if item.Is(value) {
			return true
		}
	}
	return false
}
