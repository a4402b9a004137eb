package validatable

import (
	"bytes"

	"github.com/google/uuid"
)

// UUID is a Validatable holding a UUID.
type UUID = Validatable[uuid.UUID]

// UUIDCodec accepts the forms understood by uuid.Parse and renders the
// canonical lower-case hyphenated form.
func UUIDCodec() Codec[uuid.UUID] {
	return Codec[uuid.UUID]{
		Parse: func(text string) (uuid.UUID, bool) {
			id, err := uuid.Parse(text)
			return id, err == nil
		},
		Format: uuid.UUID.String,
		Compare: func(a, b uuid.UUID) int {
			return bytes.Compare(a[:], b[:])
		},
		Key: uuid.UUID.String,
	}
}

// NewUUID returns a valid UUID holding value.
func NewUUID(value uuid.UUID) *UUID {
	return New(value, UUIDCodec())
}

// UUIDFromPtr returns a UUID holding *value, invalid when value is nil.
func UUIDFromPtr(value *uuid.UUID) *UUID {
	return FromPtr(value, UUIDCodec())
}

// ParseUUID parses text with UUIDCodec and keeps text as the raw input.
func ParseUUID(text string) *UUID {
	return FromText(text, UUIDCodec())
}
