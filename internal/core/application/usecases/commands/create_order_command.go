package commands

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemLineIsNotConstructed = errors.New(
		"OrderItemLine must be created via NewOrderItemLine constructor",
	)
)

// OrderItemLine is one requested line of an order-creation command: which
// product, how many units, and the unit price the caller saw.
type OrderItemLine struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	quantity  int
	unitPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewOrderItemLine creates a requested order line.
// Validates that the product ID is valid, the quantity is positive, and the
// unit price is a constructed Money value.
func NewOrderItemLine(productID kernel.UUID, quantity int, unitPrice kernel.Money) (OrderItemLine, error) {
	line := OrderItemLine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setProductID(productID),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
	); err != nil {
		return OrderItemLine{}, err
	}

	return line, nil
}

// Validate ensures the line was created through the constructor.
func (l OrderItemLine) Validate() error {
	return l.guard.Validate(ErrOrderItemLineIsNotConstructed)
}

// ProductID returns the requested product's identifier.
func (l OrderItemLine) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the requested unit count.
func (l OrderItemLine) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price per unit the caller submitted.
func (l OrderItemLine) UnitPrice() kernel.Money {
	return l.unitPrice
}

func (l *OrderItemLine) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	l.productID = productID
	return nil
}

func (l *OrderItemLine) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	l.quantity = quantity
	return nil
}

func (l *OrderItemLine) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}

	l.unitPrice = unitPrice
	return nil
}

// CreateOrderCommand represents a request to place a new order.
// Encapsulates the ordering user and the requested item lines.
//
// Example:
//
//	line, err := NewOrderItemLine(productID, 2, price)
//	if err != nil {
//	    return fmt.Errorf("invalid line: %w", err)
//	}
//
//	cmd, err := NewCreateOrderCommand(userID, []OrderItemLine{line})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	items  []OrderItemLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the user ID is valid and at least one constructed line is
// present. The order-level invariants (line count cap, single currency,
// total cap) are enforced by the Order aggregate.
func NewCreateOrderCommand(userID kernel.UUID, items []OrderItemLine) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setUserID(userID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// UserID returns the ordering user's identifier.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// Items returns the requested item lines.
func (c CreateOrderCommand) Items() []OrderItemLine {
	return append([]OrderItemLine(nil), c.items...)
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemLine) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	for _, line := range items {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.items = append([]OrderItemLine(nil), items...)
	return nil
}
