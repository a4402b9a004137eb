package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/extensions/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("joins field messages", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "age", Message: "field is required"})
		errs.Add(validator.ValidationError{Field: "kind", Message: `cannot parse "x"`})

		assert.Equal(t, `validation failed: age: field is required; kind: cannot parse "x"`, errs.Error())
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	t.Parallel()

	var errs validator.ValidationErrors
	first := validator.ValidationError{Field: "age", Message: "field is required", TranslationKey: "validation.required"}
	second := validator.ValidationError{Field: "age", Message: `cannot parse "x"`, TranslationKey: "validation.parsed"}
	errs.Add(first)
	errs.Add(second)
	errs.Add(validator.ValidationError{Field: "kind", Message: "bad"})

	assert.True(t, errs.Has("age"))
	assert.False(t, errs.Has("name"))
	assert.Equal(t, []string{"field is required", `cannot parse "x"`}, errs.Get("age"))
	assert.Empty(t, errs.Get("name"))
	assert.Equal(t, []validator.ValidationError{first, second}, errs.GetErrors("age"))
	assert.Equal(t, []string{"age", "kind"}, errs.Fields())
	assert.False(t, errs.IsEmpty())
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Rule{Check: func() bool { return true }},
			validator.Rule{Check: func() bool { return true }},
		)
		assert.NoError(t, err)
	})

	t.Run("handles empty rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects failures in order", func(t *testing.T) {
		err := validator.Apply(
			validator.Rule{Check: func() bool { return false }, Error: validator.ValidationError{Field: "a", Message: "one"}},
			validator.Rule{Check: func() bool { return true }, Error: validator.ValidationError{Field: "b", Message: "ok"}},
			validator.Rule{Check: func() bool { return false }, Error: validator.ValidationError{Field: "a", Message: "two"}},
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, []string{"one", "two"}, verrs.Get("a"))
		assert.False(t, verrs.Has("b"))
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "age", Message: "field is required"})

	tests := []struct {
		name    string
		err     error
		wantNil bool
	}{
		{name: "direct", err: errs},
		{name: "wrapped", err: fmt.Errorf("decode form: %w", errs)},
		{name: "regular error", err: errors.New("regular error"), wantNil: true},
		{name: "nil", err: nil, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validator.ExtractValidationErrors(tt.err)
			assert.Equal(t, !tt.wantNil, validator.IsValidationError(tt.err))
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			assert.True(t, got.Has("age"))
		})
	}
}
