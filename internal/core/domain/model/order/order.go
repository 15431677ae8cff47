package order

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

const (
	// MinItems is the smallest number of lines an order may carry.
	MinItems = 1

	// MaxItems is the largest number of lines an order may carry.
	MaxItems = 50
)

// maxTotalAmount caps the order total in the order's currency.
var maxTotalAmount = decimal.NewFromInt(1_000_000)

// defaultCurrency is used for the total of an order with no items. That state
// is unreachable under the minimum-items invariant but kept defined for safety.
const defaultCurrency = "USD"

// Order is the aggregate root of the ordering domain. It owns its item lines
// and status, holds the customer by read-only reference, and buffers domain
// events for the owning workflow to publish.
//
// Order follows these invariants, checked on construction and after every
// item mutation:
//   - Carries between 1 and 50 item lines
//   - All lines share a single currency
//   - The total amount does not exceed 1,000,000 in that currency
//   - Status transitions follow the lifecycle graph (see Status)
//
// Status changes are all-or-nothing: either the new status, the refreshed
// update timestamp, and the status-changed event all apply, or none do.
type Order struct {
	id        kernel.UUID
	user      *user.User
	items     []*OrderItem
	status    Status
	createdAt time.Time
	updatedAt time.Time

	domainEvents []DomainEvent

	isConstructed bool
}

// NewOrder creates an Order for the given user with a freshly assigned
// identifier and initial status PENDING, and records an OrderCreatedEvent.
func NewOrder(u *user.User, items []*OrderItem) (*Order, error) {
	now := time.Now().UTC()
	o, err := RestoreOrder(kernel.NewUUID(), u, items, Pending, now, now)
	if err != nil {
		return nil, err
	}

	total, err := o.TotalAmount()
	if err != nil {
		return nil, err
	}
	o.recordEvent(newOrderCreatedEvent(o.id, u.ID(), total))

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted fields, re-running all
// invariant checks. No events are recorded: restoration is not a domain fact.
func RestoreOrder(
	id kernel.UUID,
	u *user.User,
	items []*OrderItem,
	status Status,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUser(u),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if err := validateItems(items); err != nil {
		return nil, err
	}
	o.items = append([]*OrderItem(nil), items...)

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// User returns the customer the order belongs to. The reference is read-only;
// the order does not manage the user's lifecycle.
func (o *Order) User() *user.User {
	return o.user
}

// Items returns a copy of the order's item lines in insertion order.
func (o *Order) Items() []*OrderItem {
	return append([]*OrderItem(nil), o.items...)
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// TotalAmount recomputes the order total from the current items on every
// call; no total is cached. An order with no items totals zero in the
// default currency.
func (o *Order) TotalAmount() (kernel.Money, error) {
	return totalOf(o.items)
}

// ChangeStatus transitions the order to newStatus if the lifecycle graph
// allows it, refreshes the update timestamp, and records an
// OrderStatusChangedEvent. On an illegal transition nothing changes and an
// InvalidTransitionError is returned.
func (o *Order) ChangeStatus(newStatus Status) error {
	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	oldStatus := o.status
	o.status = next
	o.updatedAt = time.Now().UTC()
	o.recordEvent(newOrderStatusChangedEvent(o.id, oldStatus, next))

	return nil
}

// AddItem adds a line to the order. A line for a product already present is
// merged: the existing line is replaced by one with the summed quantity and
// the existing unit price. The mutation is rejected as a whole if it would
// break an order invariant.
func (o *Order) AddItem(item *OrderItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	candidate := o.Items()
	if idx := o.indexOfProduct(item.Product().ID()); idx >= 0 {
		existing := candidate[idx]
		merged, err := NewOrderItem(
			existing.Product(),
			existing.Quantity()+item.Quantity(),
			existing.UnitPrice(),
		)
		if err != nil {
			return err
		}
		candidate[idx] = merged
	} else {
		candidate = append(candidate, item)
	}

	return o.replaceItems(candidate)
}

// RemoveItem removes the line for the given product. Fails with a not-found
// error if the order has no line for it, and with an invariant error if the
// removal would leave the order empty.
func (o *Order) RemoveItem(productID kernel.UUID) error {
	idx := o.indexOfProduct(productID)
	if idx < 0 {
		return errs.NewObjectNotFoundError("order item", productID.String())
	}

	candidate := o.Items()
	candidate = append(candidate[:idx], candidate[idx+1:]...)

	return o.replaceItems(candidate)
}

// UpdateItemQuantity replaces the line for the given product with one
// carrying the new quantity. The quantity must be positive.
func (o *Order) UpdateItemQuantity(productID kernel.UUID, newQuantity int) error {
	if newQuantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", newQuantity),
		)
	}

	idx := o.indexOfProduct(productID)
	if idx < 0 {
		return errs.NewObjectNotFoundError("order item", productID.String())
	}

	candidate := o.Items()
	existing := candidate[idx]
	replacement, err := NewOrderItem(existing.Product(), newQuantity, existing.UnitPrice())
	if err != nil {
		return err
	}
	candidate[idx] = replacement

	return o.replaceItems(candidate)
}

// CanBeCancelled reports whether the order is still in a cancellable stage
// of its lifecycle (PENDING or CONFIRMED).
func (o *Order) CanBeCancelled() bool {
	return o.status == Pending || o.status == Confirmed
}

// Cancel transitions the order to CANCELLED. Fails with an
// InvalidTransitionError when the order has progressed past CONFIRMED.
func (o *Order) Cancel() error {
	if !o.CanBeCancelled() {
		return &InvalidTransitionError{From: o.status, To: Cancelled}
	}
	return o.ChangeStatus(Cancelled)
}

// DomainEvents returns a copy of the pending event buffer. The owning
// workflow publishes these and then calls ClearDomainEvents; the aggregate
// itself never publishes.
func (o *Order) DomainEvents() []DomainEvent {
	return append([]DomainEvent(nil), o.domainEvents...)
}

// ClearDomainEvents empties the pending event buffer. Cleared events are
// never re-emitted; calling it again on an empty buffer is a no-op.
func (o *Order) ClearDomainEvents() {
	o.domainEvents = nil
}

func (o *Order) recordEvent(event DomainEvent) {
	o.domainEvents = append(o.domainEvents, event)
}

func (o *Order) indexOfProduct(productID kernel.UUID) int {
	for i, item := range o.items {
		if item.Product().ID().IsEqual(productID) {
			return i
		}
	}
	return -1
}

// replaceItems commits a candidate item sequence after checking invariants,
// so a rejected mutation leaves the order untouched.
func (o *Order) replaceItems(candidate []*OrderItem) error {
	if err := validateItems(candidate); err != nil {
		return err
	}
	o.items = candidate
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUser(u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}
	o.user = u
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func totalOf(items []*OrderItem) (kernel.Money, error) {
	if len(items) == 0 {
		return kernel.NewMoney(decimal.Zero, defaultCurrency)
	}

	total, err := kernel.NewMoney(decimal.Zero, items[0].UnitPrice().Currency())
	if err != nil {
		return kernel.Money{}, err
	}
	for _, item := range items {
		total, err = total.Add(item.Subtotal())
		if err != nil {
			return kernel.Money{}, err
		}
	}
	return total, nil
}

func validateItems(items []*OrderItem) error {
	if len(items) < MinItems {
		return errs.NewValueIsRequiredError("order items")
	}
	if len(items) > MaxItems {
		return errs.NewValueIsOutOfRangeError("item count", len(items), MinItems, MaxItems)
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	currency := items[0].UnitPrice().Currency()
	for _, item := range items[1:] {
		if item.UnitPrice().Currency() != currency {
			return errs.NewValueIsInvalidErrorWithCause(
				"order items",
				fmt.Errorf("all items must share one currency, found %s and %s",
					currency, item.UnitPrice().Currency()),
			)
		}
	}

	total, err := totalOf(items)
	if err != nil {
		return err
	}
	if total.Amount().GreaterThan(maxTotalAmount) {
		return errs.NewValueIsOutOfRangeError(
			"total amount", total.Amount().StringFixed(2), 0, maxTotalAmount.String(),
		)
	}

	return nil
}
