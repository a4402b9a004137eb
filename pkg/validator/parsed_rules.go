package validator

import (
	"fmt"

	"github.com/dmitrymomot/extensions/pkg/enum"
	"github.com/dmitrymomot/extensions/pkg/sanitizer"
	"github.com/dmitrymomot/extensions/pkg/validatable"
)

// Parsed is the part of a validatable value the rules below inspect.
// Both *validatable.Validatable and validatable.Enum satisfy it.
type Parsed interface {
	IsValid() bool
	RawText() (string, bool)
}

func isValid(v Parsed) bool {
	return v != nil && v.IsValid()
}

func rawText(v Parsed) (string, bool) {
	if v == nil {
		return "", false
	}
	return v.RawText()
}

// supplied reports whether v carries a value or non-blank text.
func supplied(v Parsed) bool {
	if isValid(v) {
		return true
	}
	raw, ok := rawText(v)
	return ok && !sanitizer.IsBlank(raw)
}

// ValidParsed fails when non-blank text was supplied but could not be parsed.
// Absent and blank values pass; RequiredParsed reports those.
func ValidParsed(field string, v Parsed) Rule {
	raw, _ := rawText(v)
	return Rule{
		Check: func() bool {
			return !supplied(v) || isValid(v)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("cannot parse %q", raw),
			TranslationKey: "validation.parsed",
			TranslationValues: map[string]any{
				"field": field,
				"value": raw,
			},
		},
	}
}

// RequiredParsed fails when v holds no value and no non-blank text.
func RequiredParsed(field string, v Parsed) Rule {
	return Rule{
		Check: func() bool {
			return supplied(v)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ParsedIn fails unless v is valid and holds one of allowed.
func ParsedIn[T any](field string, v *validatable.Validatable[T], allowed []T) Rule {
	return Rule{
		Check: func() bool {
			for _, a := range allowed {
				if v.Is(a) {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %v", allowed),
			TranslationKey: "validation.parsed_in",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": allowed,
			},
		},
	}
}

// EnumMember fails unless value is a declared member of its registered enum type.
func EnumMember[E enum.Integer](field string, value E) Rule {
	return Rule{
		Check: func() bool {
			set, err := enum.Lookup[E]()
			return err == nil && set.Contains(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%d is not a known value", value),
			TranslationKey: "validation.enum_member",
			TranslationValues: map[string]any{
				"field": field,
				"value": value,
			},
		},
	}
}
