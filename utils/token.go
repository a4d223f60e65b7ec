package utils

import (
	"github.com/google/uuid"
)

// GenerateSessionToken returns a new opaque session token (a random uuid).
func GenerateSessionToken() string {
	return uuid.NewString()
}
