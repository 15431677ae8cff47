// Package userrepo provides data transfer objects and mapping functions for
// user persistence. Implements the repository pattern for the user entity,
// handling the conversion between the domain model and its database shape.
package userrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting users.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"uniqueIndex"`
	Name      string
	CreatedAt time.Time
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// FromDomain converts a user entity to its database representation.
func FromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:        aggregate.ID().Bytes(),
		Email:     aggregate.Email().String(),
		Name:      aggregate.Name(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// ToDomain converts a database DTO to a user entity using RestoreUser.
func ToDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, email, dto.Name, dto.CreatedAt)
}
