package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for goals and request
// trace ids.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random v4 when the
// v7 generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsUUID reports whether s parses as a UUID.
func IsUUID(s string) bool {
	return uuid.Validate(s) == nil
}
