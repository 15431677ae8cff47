// Package productrepo provides data transfer objects and mapping functions
// for product persistence. Implements the repository pattern for the product
// entity, handling the conversion between the domain model and its database
// shape, including the embedded price columns.
package productrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting products.
// The price is stored as an exact numeric amount plus a currency code.
type ProductDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	Description   string
	PriceAmount   decimal.Decimal `gorm:"type:numeric(14,2)"`
	PriceCurrency string          `gorm:"type:varchar(3)"`
	SKU           string          `gorm:"column:sku;uniqueIndex"`
	Stock         int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// FromDomain converts a product entity to its database representation.
func FromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Description:   aggregate.Description(),
		PriceAmount:   aggregate.Price().Amount(),
		PriceCurrency: aggregate.Price().Currency(),
		SKU:           aggregate.SKU(),
		Stock:         aggregate.Stock(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

// ToDomain converts a database DTO to a product entity using RestoreProduct.
func ToDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.PriceAmount, dto.PriceCurrency)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id, dto.Name, dto.Description, price, dto.SKU, dto.Stock,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
