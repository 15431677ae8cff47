package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product entities.
type ProductRepository interface {
	// Add persists a new product.
	// The product must be valid and its SKU must not already be registered.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product, typically its stock level.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetBySKU retrieves a product by its stock-keeping unit code.
	GetBySKU(ctx context.Context, sku string) (*product.Product, error)

	// GetAvailable retrieves all products with at least one unit in stock.
	GetAvailable(ctx context.Context) ([]*product.Product, error)

	// Exists reports whether a product with the given identifier is stored.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// Delete removes a product by its unique identifier.
	// Returns a not-found error when no such product is stored.
	Delete(ctx context.Context, id kernel.UUID) error
}
