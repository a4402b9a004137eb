package validatable

// Codec supplies the type-specific rules of a Validatable. All fields must be set.
type Codec[T any] struct {
	// Parse converts text to a value, reporting false on failure.
	Parse func(text string) (T, bool)
	// Format renders a value in its canonical form.
	Format func(value T) string
	// Compare orders two values, returning a negative number, zero or a positive number.
	Compare func(a, b T) int
	// Key returns a string that is identical for values Compare reports equal.
	Key func(value T) string
}
