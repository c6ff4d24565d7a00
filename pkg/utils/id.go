package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID generates a new identifier for stored records
func NewID() string {
	return uuid.New().String()
}

// ShortID returns the display form of an ID (its first six characters)
func ShortID(id string) string {
	if len(id) <= 6 {
		return id
	}
	return id[:6]
}

// GenerateProductCode generates a product code for products created without one
func GenerateProductCode() string {
	return "PRD-" + strings.ToUpper(uuid.New().String()[:8])
}
