package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewRegistrationReference returns a short reference code like
// "REG-9F1C2A4B" used in email subjects and checkout metadata. Uniqueness
// comes from a random UUID; the code is shortened for readability since
// nothing is persisted against it.
func NewRegistrationReference() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "REG-" + id[:8]
}
