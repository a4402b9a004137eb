package enum

import (
	"fmt"
	"reflect"
	"sync"
)

var registry = struct {
	mu   sync.RWMutex
	sets map[reflect.Type]any
}{
	sets: make(map[reflect.Type]any),
}

// Register builds a Set for E and makes it available to the package-level
// lookups. Each type can be registered once.
func Register[E Integer](members ...Member[E]) (*Set[E], error) {
	set, err := NewSet(members...)
	if err != nil {
		return nil, err
	}

	typ := reflect.TypeFor[E]()

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if _, exists := registry.sets[typ]; exists {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRegistered, typ)
	}
	registry.sets[typ] = set

	return set, nil
}

// MustRegister is like Register but panics on error. Intended for package-level
// variable initialisation.
func MustRegister[E Integer](members ...Member[E]) *Set[E] {
	set, err := Register(members...)
	if err != nil {
		panic(err)
	}
	return set
}

// Lookup returns the registered Set of E or ErrNotEnum.
func Lookup[E Integer]() (*Set[E], error) {
	typ := reflect.TypeFor[E]()

	registry.mu.RLock()
	set, ok := registry.sets[typ]
	registry.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotEnum, typ)
	}
	return set.(*Set[E]), nil
}

// Values enumerates all declared values of E.
func Values[E Integer]() ([]E, error) {
	set, err := Lookup[E]()
	if err != nil {
		return nil, err
	}
	return set.Values(), nil
}

// Resolve maps text to a value of E. Unregistered types never resolve.
func Resolve[E Integer](text string) (E, bool) {
	set, err := Lookup[E]()
	if err != nil {
		var zero E
		return zero, false
	}
	return set.Resolve(text)
}

// Parse is the strict variant of Resolve.
func Parse[E Integer](text string) (E, error) {
	set, err := Lookup[E]()
	if err != nil {
		var zero E
		return zero, err
	}
	return set.Parse(text)
}

// Name returns the canonical name of v.
func Name[E Integer](v E) (string, bool) {
	set, err := Lookup[E]()
	if err != nil {
		return "", false
	}
	return set.Name(v)
}

// Description returns the description attached to v, if any.
func Description[E Integer](v E) (string, bool) {
	set, err := Lookup[E]()
	if err != nil {
		return "", false
	}
	return set.Description(v)
}

// StringValue renders v preferring its description over its name.
func StringValue[E Integer](v E) string {
	set, err := Lookup[E]()
	if err != nil {
		return fmt.Sprintf("%d", v)
	}
	return set.StringValue(v)
}
