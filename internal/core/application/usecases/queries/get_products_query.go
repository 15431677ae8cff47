package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery retrieves catalog products, optionally restricted to
// products with stock.
type GetProductsQuery struct {
	availableOnly bool

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a query for the product catalog.
func NewGetProductsQuery(availableOnly bool) GetProductsQuery {
	return GetProductsQuery{
		availableOnly: availableOnly,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// AvailableOnly reports whether out-of-stock products are excluded.
func (q GetProductsQuery) AvailableOnly() bool {
	return q.availableOnly
}

// ProductProjection is the read model of one catalog product.
type ProductProjection struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Currency    string
	SKU         string
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
