package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductsQueryHandler lists catalog products directly from the database.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for catalog listings.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle executes the query. Products are sorted by name for consistent
// output; an empty catalog yields an empty slice, not an error.
func (h GetProductsQueryHandler) Handle(ctx context.Context, query GetProductsQuery) ([]ProductProjection, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			description,
			price_amount,
			price_currency,
			sku,
			stock,
			created_at,
			updated_at
		FROM products
	`
	if query.AvailableOnly() {
		sql += " WHERE stock > 0"
	}
	sql += " ORDER BY name"

	rows, err := h.db.WithContext(ctx).Raw(sql).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ProductProjection, 0)
	for rows.Next() {
		var projection ProductProjection
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&projection.Name,
			&projection.Description,
			&projection.Price,
			&projection.Currency,
			&projection.SKU,
			&projection.Stock,
			&projection.CreatedAt,
			&projection.UpdatedAt,
		); err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		projection.ID = productID

		products = append(products, projection)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
