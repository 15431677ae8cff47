package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders as denormalized projections, optionally
// filtered by owning user and/or status. Both filters unset lists all orders.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	userID *kernel.UUID
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for a filtered order listing.
// Nil filters are skipped; a non-nil filter must hold a valid value.
func NewGetOrdersQuery(userID *kernel.UUID, status *order.Status) (GetOrdersQuery, error) {
	query := GetOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setUserID(userID),
		query.setStatus(status),
	); err != nil {
		return GetOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// UserID returns the user filter, nil when unset.
func (q GetOrdersQuery) UserID() *kernel.UUID {
	return q.userID
}

// Status returns the status filter, nil when unset.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

func (q *GetOrdersQuery) setUserID(userID *kernel.UUID) error {
	if userID == nil {
		return nil
	}
	if err := userID.Validate(); err != nil {
		return err
	}

	q.userID = userID
	return nil
}

func (q *GetOrdersQuery) setStatus(status *order.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}

	q.status = status
	return nil
}
