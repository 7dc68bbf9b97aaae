// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record of the system. PasswordHash and PasswordSalt
// are derived values only; the plaintext password is never persisted.
type User struct {
	ID           uuid.UUID // The unique identifier for the user, generated by the store.
	Name         string    // The user's display name.
	Email        string    // The user's unique login identifier.
	PasswordHash string    // Hex-encoded PBKDF2 hash of the password.
	PasswordSalt string    // Hex-encoded per-user random salt, never reused.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}
