package crypto

import (
	"bytes"
	"encoding/base64"
	"testing"
)

func TestDeriveKey(t *testing.T) {
	secret := "correct horse battery staple"
	salt := []byte("somesweetandsaltysalt")

	key1 := DeriveKey(secret, salt)
	key2 := DeriveKey(secret, salt)

	if !bytes.Equal(key1, key2) {
		t.Error("DeriveKey with same inputs produced different results")
	}

	key3 := DeriveKey("different secret", salt)
	if bytes.Equal(key1, key3) {
		t.Error("DeriveKey with different secrets produced same results")
	}

	key4 := DeriveKey(secret, TokenKeySalt)
	if bytes.Equal(key1, key4) {
		t.Error("DeriveKey with different salts produced same results")
	}

	if len(key1) != 32 {
		t.Errorf("Expected 32-byte key, got %d bytes", len(key1))
	}
}

func TestRandomSecret(t *testing.T) {
	s1, err := RandomSecret(32)
	if err != nil {
		t.Fatalf("RandomSecret failed: %v", err)
	}
	s2, _ := RandomSecret(32)

	if s1 == s2 {
		t.Error("RandomSecret produced identical secrets")
	}

	raw, err := base64.RawURLEncoding.DecodeString(s1)
	if err != nil {
		t.Fatalf("RandomSecret output is not base64url: %v", err)
	}
	if len(raw) != 32 {
		t.Errorf("Expected 32 random bytes, got %d", len(raw))
	}
}
