// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"passport/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailTaken is returned when a create hits the unique email constraint.
// The store's unique index is the authority for uniqueness under concurrent
// registrations.
var ErrEmailTaken = errors.New("email already taken")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a single user by their unique email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List retrieves all registered users.
	List(ctx context.Context) ([]*entity.User, error)
}
