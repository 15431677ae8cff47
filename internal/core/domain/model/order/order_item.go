package order

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem instance was not
// created through NewOrderItem or RestoreOrderItem.
var ErrOrderItemIsNotConstructed = errors.New(
	"OrderItem must be created via NewOrderItem or RestoreOrderItem",
)

// OrderItem is one priced line of an order. It is immutable: changing the
// quantity of a line means constructing a replacement item for the same
// product, which is what Order.UpdateItemQuantity does.
//
// OrderItem follows these invariants:
//   - Quantity must be positive
//   - Unit price must be a constructed, positive Money value
//   - Unit price currency must match the product's price currency
type OrderItem struct {
	id        string
	product   *product.Product
	quantity  int
	unitPrice kernel.Money

	isConstructed bool
}

// NewOrderItem creates a priced line for the given product. The line
// identifier combines the product identifier with the creation instant.
func NewOrderItem(p *product.Product, quantity int, unitPrice kernel.Money) (*OrderItem, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	id := fmt.Sprintf("%s-%d", p.ID(), time.Now().UnixNano())
	return RestoreOrderItem(id, p, quantity, unitPrice)
}

// RestoreOrderItem reconstructs an OrderItem from persisted fields,
// re-running all invariant checks.
func RestoreOrderItem(id string, p *product.Product, quantity int, unitPrice kernel.Money) (*OrderItem, error) {
	item := &OrderItem{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProduct(p),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice, p),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the OrderItem instance was properly constructed.
func (i *OrderItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrOrderItemIsNotConstructed
	}
	return nil
}

// ID returns the line identifier.
func (i *OrderItem) ID() string {
	return i.id
}

// Product returns the product this line refers to. The reference is
// read-only; the item does not manage the product's lifecycle.
func (i *OrderItem) Product() *product.Product {
	return i.product
}

// Quantity returns the ordered unit count.
func (i *OrderItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit captured at ordering time.
func (i *OrderItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal returns unit price times quantity.
func (i *OrderItem) Subtotal() kernel.Money {
	// quantity is validated positive at construction, so Multiply cannot fail
	subtotal, _ := i.unitPrice.Multiply(i.quantity)
	return subtotal
}

func (i *OrderItem) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("order item id")
	}
	i.id = id
	return nil
}

func (i *OrderItem) setProduct(p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	i.product = p
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

func (i *OrderItem) setUnitPrice(unitPrice kernel.Money, p *product.Product) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	if unitPrice.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unit price",
			errors.New("unit price must be greater than zero"),
		)
	}
	if p != nil && p.Validate() == nil && unitPrice.Currency() != p.Price().Currency() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unit price",
			fmt.Errorf("currency %s does not match product price currency %s",
				unitPrice.Currency(), p.Price().Currency()),
		)
	}
	i.unitPrice = unitPrice
	return nil
}
