package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const sessionIDBytes = 32

// NewSessionID returns a fresh opaque session identifier: 32 random bytes
// from crypto/rand, hex-encoded
func NewSessionID() (string, error) {
	b := make([]byte, sessionIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(b), nil
}
