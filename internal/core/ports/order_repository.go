package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate with all its item lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Item lines are replaced as a whole so the stored state always matches
	// the aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its user and all item lines.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByUserID retrieves all orders placed by the given user,
	// most recent first.
	GetByUserID(ctx context.Context, userID kernel.UUID) ([]*order.Order, error)

	// GetByStatus retrieves all orders currently in the given status.
	// Used by the background progression jobs to scan for work.
	GetByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetAll retrieves every stored order, most recent first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Exists reports whether an order with the given identifier is stored.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// Delete removes an order and its item lines by the order identifier.
	// Returns a not-found error when no such order is stored.
	Delete(ctx context.Context, id kernel.UUID) error
}
