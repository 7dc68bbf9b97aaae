// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying key-derivation function, keeping the domain pure.
type PasswordHasher interface {
	// Hash derives a salted one-way hash from a plaintext password.
	// The salt is freshly generated on every call and both values are
	// returned hex encoded.
	Hash(password string) (hash string, salt string, err error)

	// Check re-derives a hash from the candidate and stored salt and reports
	// whether it matches the stored hash. Malformed stored values yield
	// false, never an error.
	Check(candidate, hash, salt string) bool
}
