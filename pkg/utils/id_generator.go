// Package utils provides shared helpers for identifiers and display
// formatting.
package utils

import (
	"github.com/google/uuid"
)

// GenerateID creates a new UUID v4 string for use as an entity identifier.
func GenerateID() string {
	return uuid.New().String()
}
