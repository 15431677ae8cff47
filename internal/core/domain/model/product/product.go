// Package product provides the Product entity for the ordering system.
// A product carries its catalog data, a price, and a mutable stock level.
// Stock is the only state that changes after construction; every stock
// operation enforces a non-negative result and refreshes the update timestamp.
package product

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

	// ErrInsufficientStock is the classification target for stock shortfalls,
	// used with errors.Is. The returned error names available vs required units.
	ErrInsufficientStock = errors.New("insufficient stock")
)

const (
	minNameLength        = 2
	maxNameLength        = 255
	maxDescriptionLength = 1000
	minSKULength         = 3
	maxSKULength         = 50
)

// InsufficientStockError reports a stock shortfall for a specific product.
type InsufficientStockError struct {
	ProductName string
	Available   int
	Required    int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: available %d, required %d",
		e.ProductName, e.Available, e.Required)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Product represents a catalog product with a price and an inventory level.
//
// Product follows these invariants:
//   - Must have a valid unique identifier
//   - Name must be 2-255 characters, description 1-1000 characters
//   - SKU must be 3-50 characters and is globally unique (enforced by persistence)
//   - Price must be a constructed Money value
//   - Stock never goes negative
type Product struct {
	id          kernel.UUID
	name        string
	description string
	price       kernel.Money
	sku         string
	stock       int
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewProduct creates a Product with a freshly assigned identifier.
func NewProduct(name, description string, price kernel.Money, sku string, stock int) (*Product, error) {
	now := time.Now().UTC()
	return RestoreProduct(kernel.NewUUID(), name, description, price, sku, stock, now, now)
}

// RestoreProduct reconstructs a Product from persisted fields, re-running all
// invariant checks.
func RestoreProduct(
	id kernel.UUID,
	name, description string,
	price kernel.Money,
	sku string,
	stock int,
	createdAt, updatedAt time.Time,
) (*Product, error) {
	p := &Product{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setDescription(description),
		p.setPrice(price),
		p.setSKU(sku),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the product description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the product's catalog price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// SKU returns the stock-keeping unit code.
func (p *Product) SKU() string {
	return p.sku
}

// Stock returns the current inventory level.
func (p *Product) Stock() int {
	return p.stock
}

// CreatedAt returns the creation timestamp.
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the timestamp of the last stock change.
func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

// IsAvailable reports whether at least one unit is in stock.
func (p *Product) IsAvailable() bool {
	return p.stock > 0
}

// HasStock reports whether the requested quantity can be satisfied.
func (p *Product) HasStock(quantity int) bool {
	return p.stock >= quantity
}

// UpdateStock replaces the inventory level. The new level must not be negative.
func (p *Product) UpdateStock(newStock int) error {
	if newStock < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stock",
			fmt.Errorf("%d is negative", newStock),
		)
	}
	p.stock = newStock
	p.updatedAt = time.Now().UTC()
	return nil
}

// ReduceStock removes a positive quantity of units from inventory.
// Fails with an InsufficientStockError if fewer units are available.
func (p *Product) ReduceStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if p.stock < quantity {
		return &InsufficientStockError{
			ProductName: p.name,
			Available:   p.stock,
			Required:    quantity,
		}
	}
	p.stock -= quantity
	p.updatedAt = time.Now().UTC()
	return nil
}

// IncreaseStock adds a positive quantity of units to inventory.
func (p *Product) IncreaseStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	p.stock += quantity
	p.updatedAt = time.Now().UTC()
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < minNameLength || len(trimmed) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", len(trimmed), minNameLength, maxNameLength)
	}
	p.name = trimmed
	return nil
}

func (p *Product) setDescription(description string) error {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("description")
	}
	if len(trimmed) > maxDescriptionLength {
		return errs.NewValueIsOutOfRangeError("description length", len(trimmed), 1, maxDescriptionLength)
	}
	p.description = trimmed
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setSKU(sku string) error {
	trimmed := strings.TrimSpace(sku)
	if len(trimmed) < minSKULength || len(trimmed) > maxSKULength {
		return errs.NewValueIsOutOfRangeError("sku length", len(trimmed), minSKULength, maxSKULength)
	}
	p.sku = trimmed
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stock",
			fmt.Errorf("%d is negative", stock),
		)
	}
	p.stock = stock
	return nil
}
