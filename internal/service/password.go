package service

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes         = 16
	oneTimeTokenBytes = 16
	pbkdf2Iterations  = 100000
	pbkdf2KeyLength   = 32
)

// CreateSalt returns fresh random salt bytes, base64-encoded.
func CreateSalt() (string, error) {
	raw := make([]byte, saltBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// HashPassword derives a PBKDF2-HMAC-SHA256 hash of the password with the
// given salt, hex-encoded. Deterministic for identical inputs, which is what
// makes verification possible.
func HashPassword(password, salt string) string {
	binaryHash := pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, pbkdf2KeyLength, sha256.New)
	return hex.EncodeToString(binaryHash)
}

// CreateSaltHashedPassword generates a fresh salt and hashes the password
// with it.
func CreateSaltHashedPassword(password string) (salt, hash string, err error) {
	salt, err = CreateSalt()
	if err != nil {
		return "", "", err
	}
	return salt, HashPassword(password, salt), nil
}

// VerifyPassword compares in constant time regardless of where the hashes
// first differ.
func VerifyPassword(password, salt, expectedHash string) bool {
	got := HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(got), []byte(expectedHash)) == 1
}

// CreateToken returns a random hex token for one-time flows (registration,
// password reset). Uniqueness is left to the store's unique index.
func CreateToken() (string, error) {
	raw := make([]byte, oneTimeTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}
