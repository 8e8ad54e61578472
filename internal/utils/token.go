package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// SessionTokenBytes is the entropy of a session token before hex encoding.
const SessionTokenBytes = 32

// NewSessionToken returns a random hex encoded session token.
func NewSessionToken() (string, error) {
	b := make([]byte, SessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("error generating session token: %w", err)
	}

	return hex.EncodeToString(b), nil
}
