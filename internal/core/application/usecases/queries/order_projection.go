// Package queries contains read operations that project system state.
// Implements the Query side of the CQRS architecture: handlers read with raw
// SQL directly against the database, bypassing the domain model, and return
// denormalized response projections.
package queries

import (
	"time"

	"ordering/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// OrderItemProjection is one denormalized order line: ids, the product name
// at read time, and the line subtotal.
type OrderItemProjection struct {
	ID          string
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// OrderProjection is the denormalized read model of one order: user fields
// flattened in, per-line subtotals, and the grand total.
type OrderProjection struct {
	ID          kernel.UUID
	UserID      kernel.UUID
	UserName    string
	UserEmail   string
	Status      string
	Items       []OrderItemProjection
	TotalAmount decimal.Decimal
	Currency    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
