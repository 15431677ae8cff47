// Package ports defines the outbound contracts of the ordering core.
// Repository interfaces establish the persistence boundary between the domain
// layer and infrastructure, and the event publisher and notifier interfaces
// abstract the side effects order workflows trigger after committing.
package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user entities.
type UserRepository interface {
	// Add persists a new user.
	// The user must be valid and its email must not already be registered.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user by email address.
	GetByEmail(ctx context.Context, email kernel.Email) (*user.User, error)

	// Exists reports whether a user with the given identifier is stored.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// Delete removes a user by its unique identifier.
	// Returns a not-found error when no such user is stored.
	Delete(ctx context.Context, id kernel.UUID) error
}
