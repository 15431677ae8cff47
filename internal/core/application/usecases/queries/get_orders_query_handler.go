package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders with their users and lines directly from
// the database.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listings.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders are returned most recent first; an empty
// result is a valid outcome, not an error.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderProjection, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
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
		WHERE 1=1
	`
	args := make([]any, 0, 2)
	if query.UserID() != nil {
		sql += " AND o.user_id = ?"
		args = append(args, query.UserID().Bytes())
	}
	if query.Status() != nil {
		sql += " AND o.status = ?"
		args = append(args, query.Status().String())
	}
	sql += " ORDER BY o.created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders, err := scanOrderRows(rows)
	if err != nil {
		return nil, err
	}

	if err = loadOrderItems(ctx, h.db, orders); err != nil {
		return nil, err
	}

	return orders, nil
}
