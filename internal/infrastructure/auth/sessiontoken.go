package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

const sessionTokenBytes = 32

// GenerateSessionToken returns a fresh opaque 64-hex-char token for the
// client plus the SHA-256 hash that goes to storage. The plaintext
// token is never persisted.
func GenerateSessionToken() (token, tokenHash string, err error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("failed to generate session token: %w", err)
	}

	token = hex.EncodeToString(b)
	return token, HashSessionToken(token), nil
}

// HashSessionToken derives the storage hash for a client token.
func HashSessionToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
