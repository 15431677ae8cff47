package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrGetUserQueryIsNotConstructed = errors.New(
	"GetUserQuery must be created via NewGetUserQuery constructor",
)

// GetUserQuery retrieves one registered user.
type GetUserQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserQuery creates a query for a single user.
func NewGetUserQuery(userID kernel.UUID) (GetUserQuery, error) {
	query := GetUserQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setUserID(userID); err != nil {
		return GetUserQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

// UserID returns the user's identifier.
func (q GetUserQuery) UserID() kernel.UUID {
	return q.userID
}

func (q *GetUserQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	q.userID = userID
	return nil
}

// UserProjection is the read model of one registered user.
type UserProjection struct {
	ID        kernel.UUID
	Email     string
	Name      string
	CreatedAt time.Time
}
