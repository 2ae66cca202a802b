// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"alertstream/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserLister enumerates the known user roster.
type UserLister interface {
	// ListUserIDs returns the IDs of every known user.
	ListUserIDs(ctx context.Context) ([]string, error)
}

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	UserLister

	// FindByUsername retrieves a single user by their login name.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user entity and fills in its generated ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// UpdatePassword replaces the stored password hash of a user.
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}
