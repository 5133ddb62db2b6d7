// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"cashreg/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for credential persistence.
var (
	// ErrUserNotFound is returned when no user matches the given username.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned when creating a user whose username is taken.
	ErrUserExists = errors.New("user already exists")
)

// CredentialRepository defines the operations for cashier credential storage.
// The application layer depends on this interface, not on the concrete
// in-memory implementation, so a persistent store can replace it later.
type CredentialRepository interface {
	// Create persists a new user record. Usernames are unique; creating a
	// duplicate returns ErrUserExists.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves a user by exact, case-sensitive username match.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}
