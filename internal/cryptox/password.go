// Package cryptox holds the password hashing primitives.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

const (
	iterations = 4096
	keyLen     = 32
)

// appSalt is fixed so hashing stays deterministic: the same password always
// produces the same stored hash, and verification is recompute-and-compare.
var appSalt = []byte("curio/pw/v1")

// HashPassword derives a hex-encoded PBKDF2-SHA256 hash of password.
func HashPassword(password string) string {
	key := pbkdf2.Key([]byte(password), appSalt, iterations, keyLen, sha256.New)
	return hex.EncodeToString(key)
}

// VerifyPassword reports whether password hashes to storedHash.
// The comparison is constant-time.
func VerifyPassword(password string, storedHash string) bool {
	candidate := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(storedHash)) == 1
}
