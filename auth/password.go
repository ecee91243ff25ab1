package auth

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest password accepted on change.
const MinPasswordLength = 6

// HashCost is the bcrypt cost for new hashes. Tests lower it.
var HashCost = 12

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// dummyHash is compared against when the username does not exist, so a
// failed login costs the same either way. It is generated once, at the
// cost in effect on first use.
var dummyHash = sync.OnceValues(func() (string, error) {
	return newDummyHash(HashCost)
})

func newDummyHash(cost int) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte("dummy-password-for-timing"), cost)
	if err != nil {
		return "", fmt.Errorf("generating dummy hash: %w", err)
	}
	return string(h), nil
}
