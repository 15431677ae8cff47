// Package user provides the User entity for the ordering system.
// Users are immutable after construction: identity, email, and display name
// are fixed at registration time.
package user

import (
	"errors"
	"strings"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

const (
	minNameLength = 2
	maxNameLength = 100
)

// User represents a registered customer.
//
// User follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a validated email address
//   - Name must be 2-100 characters after trimming surrounding whitespace
type User struct {
	id        kernel.UUID
	email     kernel.Email
	name      string
	createdAt time.Time

	isConstructed bool
}

// NewUser creates a User with a freshly assigned identifier.
func NewUser(email kernel.Email, name string) (*User, error) {
	return RestoreUser(kernel.NewUUID(), email, name, time.Now().UTC())
}

// RestoreUser reconstructs a User from persisted fields, re-running all
// invariant checks.
func RestoreUser(id kernel.UUID, email kernel.Email, name string, createdAt time.Time) (*User, error) {
	u := &User{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setName(name),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the user's email address.
func (u *User) Email() kernel.Email {
	return u.email
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// CreatedAt returns the registration timestamp.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	u.email = email
	return nil
}

func (u *User) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < minNameLength || len(trimmed) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", len(trimmed), minNameLength, maxNameLength)
	}
	u.name = trimmed
	return nil
}
