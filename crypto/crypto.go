package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// TokenKeySalt domain-separates the bearer token signing key from any other
// key derived from the same configured secret.
var TokenKeySalt = []byte("jacsonsite/token-signing/v1")

// DeriveKey stretches secret into a 32-byte key.
func DeriveKey(secret string, salt []byte) []byte {
	// Argon2id parameters: 1 pass, 64MB memory, 4 threads, 32 bytes key
	return argon2.IDKey([]byte(secret), salt, 1, 64*1024, 4, 32)
}

// RandomSecret returns n random bytes, URL-safe base64 encoded.
func RandomSecret(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
