package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// tokenBytes is the entropy of a session token. 32 bytes (256 bits) encode
// to the 64-character hex strings stored as session IDs.
const tokenBytes = 32

// RandomTokenSource mints opaque session tokens from crypto/rand.
type RandomTokenSource struct{}

// NewTokenSource creates a new RandomTokenSource.
func NewTokenSource() RandomTokenSource {
	return RandomTokenSource{}
}

// NewToken returns a new cryptographically random 64-character hex token.
func (RandomTokenSource) NewToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
