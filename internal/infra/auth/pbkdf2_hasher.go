// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"

	"passport/config"
	"passport/internal/domain/service"
	"passport/internal/errors"
)

const (
	saltBytes = 16
	keyBytes  = 64
)

// pbkdf2Hasher is a concrete implementation of the PasswordHasher interface
// using PBKDF2-SHA512. The iteration count is deliberately high so that
// derivation stays CPU-slow as a brute-force deterrent.
type pbkdf2Hasher struct {
	iterations int
}

// NewPBKDF2Hasher is the constructor for pbkdf2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewPBKDF2Hasher(cfg *config.Config) service.PasswordHasher {
	return &pbkdf2Hasher{iterations: cfg.PBKDF2Iterations()}
}

// Hash derives a salted hash from a plaintext password. A fresh random salt
// is generated on every call; salts are never reused between users.
func (h *pbkdf2Hasher) Hash(password string) (string, string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", "", errors.Wrap(err, "failed to generate salt")
	}

	key := pbkdf2.Key([]byte(password), salt, h.iterations, keyBytes, sha512.New)

	return hex.EncodeToString(key), hex.EncodeToString(salt), nil
}

// Check re-derives a hash from the candidate and stored salt with identical
// parameters and compares it in constant time. A malformed stored hash or
// salt yields false.
func (h *pbkdf2Hasher) Check(candidate, hash, salt string) bool {
	storedKey, err := hex.DecodeString(hash)
	if err != nil {
		return false
	}

	saltRaw, err := hex.DecodeString(salt)
	if err != nil {
		return false
	}

	candidateKey := pbkdf2.Key([]byte(candidate), saltRaw, h.iterations, keyBytes, sha512.New)

	return subtle.ConstantTimeCompare(candidateKey, storedKey) == 1
}
