package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when no stored hash exists, so a lookup miss
// costs the same as a wrong secret.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-secret-for-timing"), bcrypt.DefaultCost)

// HashSecret hashes a secret using bcrypt
func HashSecret(secret string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	return string(bytes), err
}

// VerifySecret reports whether secret matches hash. An empty hash is
// verified against a throwaway hash and always fails.
func VerifySecret(hash, secret string) bool {
	if hash == "" {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(secret))
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	if err != nil && !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		// malformed stored hash; treat as a mismatch
		return false
	}
	return err == nil
}

// IsSecretHash reports whether stored looks like a bcrypt hash rather than
// a legacy plaintext value.
func IsSecretHash(stored string) bool {
	_, err := bcrypt.Cost([]byte(stored))
	return err == nil
}
