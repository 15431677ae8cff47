package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// scanOrderRows turns a joined orders+users result set into projections
// without items or totals; loadOrderItems fills those in afterwards.
func scanOrderRows(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]OrderProjection, error) {
	orders := make([]OrderProjection, 0)

	for rows.Next() {
		var projection OrderProjection
		var id, userID uuid.UUID

		if err := rows.Scan(
			&id,
			&userID,
			&projection.UserName,
			&projection.UserEmail,
			&projection.Status,
			&projection.CreatedAt,
			&projection.UpdatedAt,
		); err != nil {
			return nil, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		projection.ID = orderID

		ownerID, err := kernel.UUIDFromBytes(userID[:])
		if err != nil {
			return nil, err
		}
		projection.UserID = ownerID

		orders = append(orders, projection)
	}

	return orders, rows.Err()
}

// loadOrderItems fetches the lines of every listed order in one query and
// attaches them, computing per-line subtotals and the grand total.
func loadOrderItems(ctx context.Context, db *gorm.DB, orders []OrderProjection) error {
	if len(orders) == 0 {
		return nil
	}

	index := make(map[kernel.UUID]*OrderProjection, len(orders))
	orderIDs := make([]uuid.UUID, 0, len(orders))
	for i := range orders {
		index[orders[i].ID] = &orders[i]
		orderIDs = append(orderIDs, orders[i].ID.Bytes())
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.order_id,
			i.product_id,
			p.name,
			i.quantity,
			i.unit_price_amount,
			i.unit_price_currency
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.order_id = ANY(?)
		ORDER BY i.id
	`, pq.Array(orderIDs)).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemProjection
		var orderID, productID uuid.UUID
		var currency string

		if err = rows.Scan(
			&item.ID,
			&orderID,
			&productID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
			&currency,
		); err != nil {
			return err
		}

		ownerID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return idErr
		}

		lineProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return idErr
		}
		item.ProductID = lineProductID
		item.Subtotal = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))

		projection, ok := index[ownerID]
		if !ok {
			continue
		}
		projection.Items = append(projection.Items, item)
		projection.TotalAmount = projection.TotalAmount.Add(item.Subtotal)
		projection.Currency = currency
	}

	return rows.Err()
}
