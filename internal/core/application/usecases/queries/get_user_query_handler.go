package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUserQueryHandler reads one user directly from the database.
type GetUserQueryHandler struct {
	db *gorm.DB
}

// NewGetUserQueryHandler creates a handler for single-user reads.
func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no user
// with the requested identifier exists.
func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (UserProjection, error) {
	if err := query.Validate(); err != nil {
		return UserProjection{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			email,
			name,
			created_at
		FROM users
		WHERE id = ?
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return UserProjection{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return UserProjection{}, err
		}
		return UserProjection{}, errs.NewObjectNotFoundError("user", query.UserID().String())
	}

	var projection UserProjection
	var id uuid.UUID
	if err = rows.Scan(&id, &projection.Email, &projection.Name, &projection.CreatedAt); err != nil {
		return UserProjection{}, err
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return UserProjection{}, err
	}
	projection.ID = userID

	return projection, nil
}
