package enum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/extensions/pkg/enum"
)

type fakeEnum int

const (
	value1 fakeEnum = iota
	value2
)

var fakeSet = enum.MustRegister(
	enum.Member[fakeEnum]{Value: value1, Name: "Value1"},
	enum.Member[fakeEnum]{Value: value2, Name: "Value2", Description: "Value 2"},
)

type unregistered uint8

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected fakeEnum
		found    bool
	}{
		{name: "exact name", input: "Value1", expected: value1, found: true},
		{name: "description", input: "Value 2", expected: value2, found: true},
		{name: "lower case name", input: "value2", expected: value2, found: true},
		{name: "padded lower case name", input: "  value2  ", expected: value2, found: true},
		{name: "upper case name", input: "VALUE1", expected: value1, found: true},
		{name: "description with other case", input: "value 2", found: false},
		{name: "padded description", input: " Value 2", found: false},
		{name: "unknown", input: "BadValue", found: false},
		{name: "empty", input: "", found: false},
		{name: "numeric text", input: "1", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := enum.Resolve[fakeEnum](tt.input)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, got)
			} else {
				assert.Zero(t, got)
			}

			fromSet, okSet := fakeSet.Resolve(tt.input)
			assert.Equal(t, ok, okSet)
			assert.Equal(t, got, fromSet)
		})
	}

	t.Run("unregistered type never resolves", func(t *testing.T) {
		t.Parallel()

		_, ok := enum.Resolve[unregistered]("Value1")
		assert.False(t, ok)
	})

	t.Run("nil set never resolves", func(t *testing.T) {
		t.Parallel()

		var s *enum.Set[fakeEnum]
		_, ok := s.Resolve("Value1")
		assert.False(t, ok)
	})
}

func TestResolveOrder(t *testing.T) {
	t.Parallel()

	type shade int
	set := enum.MustNewSet(
		enum.Member[shade]{Value: 1, Name: "dark", Description: "Light"},
		enum.Member[shade]{Value: 2, Name: "Light"},
		enum.Member[shade]{Value: 3, Name: "light2", Description: "DARK"},
	)

	t.Run("exact name beats description", func(t *testing.T) {
		t.Parallel()

		v, ok := set.Resolve("Light")
		require.True(t, ok)
		assert.Equal(t, shade(2), v)
	})

	t.Run("normalized name beats description", func(t *testing.T) {
		t.Parallel()

		v, ok := set.Resolve("DARK")
		require.True(t, ok)
		assert.Equal(t, shade(1), v)
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("resolves like the lenient variant", func(t *testing.T) {
		t.Parallel()

		v, err := enum.Parse[fakeEnum]("Value 2")
		require.NoError(t, err)
		assert.Equal(t, value2, v)

		v, err = enum.Parse[fakeEnum]("Value1")
		require.NoError(t, err)
		assert.Equal(t, value1, v)
	})

	t.Run("empty text", func(t *testing.T) {
		t.Parallel()

		_, err := enum.Parse[fakeEnum]("")
		assert.ErrorIs(t, err, enum.ErrEmptyText)
		assert.ErrorIs(t, err, enum.ErrInvalidArgument)
	})

	t.Run("no match", func(t *testing.T) {
		t.Parallel()

		_, err := enum.Parse[fakeEnum]("BadValue")
		assert.ErrorIs(t, err, enum.ErrNoMatch)
		assert.ErrorIs(t, err, enum.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "BadValue")
	})

	t.Run("not an enum", func(t *testing.T) {
		t.Parallel()

		_, err := enum.Parse[unregistered]("Value1")
		assert.ErrorIs(t, err, enum.ErrNotEnum)
		assert.ErrorIs(t, err, enum.ErrInvalidArgument)
	})
}

func TestValues(t *testing.T) {
	t.Parallel()

	values, err := enum.Values[fakeEnum]()
	require.NoError(t, err)
	assert.Equal(t, []fakeEnum{value1, value2}, values)

	_, err = enum.Values[unregistered]()
	assert.ErrorIs(t, err, enum.ErrNotEnum)
}

func TestDescription(t *testing.T) {
	t.Parallel()

	d, ok := enum.Description(value2)
	assert.True(t, ok)
	assert.Equal(t, "Value 2", d)

	_, ok = enum.Description(value1)
	assert.False(t, ok, "member without description")

	_, ok = enum.Description(fakeEnum(42))
	assert.False(t, ok, "undeclared value")

	_, ok = enum.Description(unregistered(0))
	assert.False(t, ok, "unregistered type")
}

func TestStringValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Value1", enum.StringValue(value1))
	assert.Equal(t, "Value 2", enum.StringValue(value2))
	assert.Equal(t, "42", enum.StringValue(fakeEnum(42)))
	assert.Equal(t, "7", enum.StringValue(unregistered(7)))
}

func TestName(t *testing.T) {
	t.Parallel()

	n, ok := enum.Name(value2)
	assert.True(t, ok)
	assert.Equal(t, "Value2", n)

	_, ok = enum.Name(fakeEnum(-1))
	assert.False(t, ok)

	assert.Equal(t, "Value2", fakeSet.Format(value2))
	assert.Equal(t, "-1", fakeSet.Format(fakeEnum(-1)))
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("second registration fails", func(t *testing.T) {
		t.Parallel()

		_, err := enum.Register(enum.Member[fakeEnum]{Value: value1, Name: "Other"})
		assert.ErrorIs(t, err, enum.ErrAlreadyRegistered)

		assert.Panics(t, func() {
			enum.MustRegister(enum.Member[fakeEnum]{Value: value1, Name: "Other"})
		})
	})

	t.Run("lookup returns the registered set", func(t *testing.T) {
		t.Parallel()

		set, err := enum.Lookup[fakeEnum]()
		require.NoError(t, err)
		assert.Same(t, fakeSet, set)
	})
}

func TestNewSet(t *testing.T) {
	t.Parallel()

	type color int

	tests := []struct {
		name    string
		members []enum.Member[color]
		wantErr bool
	}{
		{name: "no members", members: nil, wantErr: true},
		{name: "empty name", members: []enum.Member[color]{{Value: 1, Name: ""}}, wantErr: true},
		{name: "name with space", members: []enum.Member[color]{{Value: 1, Name: "Dark Red"}}, wantErr: true},
		{name: "duplicate name", members: []enum.Member[color]{{Value: 1, Name: "Red"}, {Value: 2, Name: "Red"}}, wantErr: true},
		{name: "aliases are allowed", members: []enum.Member[color]{{Value: 1, Name: "Red"}, {Value: 1, Name: "Crimson"}}, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			set, err := enum.NewSet(tt.members...)
			if tt.wantErr {
				assert.ErrorIs(t, err, enum.ErrInvalidMember)
				assert.Nil(t, set)
				return
			}
			require.NoError(t, err)
			assert.Len(t, set.Members(), len(tt.members))
		})
	}

	t.Run("first alias is canonical", func(t *testing.T) {
		t.Parallel()

		set := enum.MustNewSet(
			enum.Member[color]{Value: 1, Name: "Red"},
			enum.Member[color]{Value: 1, Name: "Crimson"},
		)

		name, ok := set.Name(1)
		require.True(t, ok)
		assert.Equal(t, "Red", name)

		v, ok := set.Resolve("crimson")
		require.True(t, ok)
		assert.Equal(t, color(1), v)
	})

	t.Run("members are copied", func(t *testing.T) {
		t.Parallel()

		set := enum.MustNewSet(enum.Member[color]{Value: 1, Name: "Red"})
		members := set.Members()
		members[0].Name = "Blue"

		name, _ := set.Name(1)
		assert.Equal(t, "Red", name)
		assert.True(t, set.Contains(1))
		assert.False(t, set.Contains(2))
	})

	t.Run("must panics on invalid members", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { enum.MustNewSet[color]() })
	})
}
