package queries

import (
	"context"

	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order with its user and lines directly from
// the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no order
// with the requested identifier exists.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderProjection, error) {
	if err := query.Validate(); err != nil {
		return OrderProjection{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.user_id,
			u.name,
			u.email,
			o.status,
			o.created_at,
			o.updated_at
		FROM orders o
		JOIN users u ON u.id = o.user_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderProjection{}, err
	}
	defer rows.Close()

	orders, err := scanOrderRows(rows)
	if err != nil {
		return OrderProjection{}, err
	}
	if len(orders) == 0 {
		return OrderProjection{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	if err = loadOrderItems(ctx, h.db, orders); err != nil {
		return OrderProjection{}, err
	}

	return orders[0], nil
}
