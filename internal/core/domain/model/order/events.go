package order

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
)

// Event type names used for subscriber dispatch and message routing.
const (
	EventTypeOrderCreated       = "OrderCreated"
	EventTypeOrderStatusChanged = "OrderStatusChanged"
)

// DomainEvent is an immutable fact about something that happened to the
// order aggregate. Events accumulate on the aggregate until the owning
// workflow publishes them and clears the buffer; the aggregate never
// re-emits a cleared event.
type DomainEvent interface {
	// EventID returns the unique identifier of this event instance.
	EventID() kernel.UUID

	// EventType returns the name subscribers dispatch on.
	EventType() string

	// AggregateID returns the identifier of the order the event belongs to.
	AggregateID() kernel.UUID

	// OccurredAt returns when the event was recorded.
	OccurredAt() time.Time
}

// OrderCreatedEvent is recorded once when an order is created through NewOrder.
type OrderCreatedEvent struct {
	eventID     kernel.UUID
	orderID     kernel.UUID
	userID      kernel.UUID
	totalAmount kernel.Money
	occurredAt  time.Time
}

func newOrderCreatedEvent(orderID, userID kernel.UUID, totalAmount kernel.Money) *OrderCreatedEvent {
	return &OrderCreatedEvent{
		eventID:     kernel.NewUUID(),
		orderID:     orderID,
		userID:      userID,
		totalAmount: totalAmount,
		occurredAt:  time.Now().UTC(),
	}
}

// EventID returns the unique identifier of this event instance.
func (e *OrderCreatedEvent) EventID() kernel.UUID { return e.eventID }

// EventType returns EventTypeOrderCreated.
func (e *OrderCreatedEvent) EventType() string { return EventTypeOrderCreated }

// AggregateID returns the created order's identifier.
func (e *OrderCreatedEvent) AggregateID() kernel.UUID { return e.orderID }

// OccurredAt returns when the event was recorded.
func (e *OrderCreatedEvent) OccurredAt() time.Time { return e.occurredAt }

// OrderID returns the created order's identifier.
func (e *OrderCreatedEvent) OrderID() kernel.UUID { return e.orderID }

// UserID returns the identifier of the user the order belongs to.
func (e *OrderCreatedEvent) UserID() kernel.UUID { return e.userID }

// TotalAmount returns the order total at creation time.
func (e *OrderCreatedEvent) TotalAmount() kernel.Money { return e.totalAmount }

// OrderStatusChangedEvent is recorded once per successful status transition.
type OrderStatusChangedEvent struct {
	eventID    kernel.UUID
	orderID    kernel.UUID
	oldStatus  Status
	newStatus  Status
	occurredAt time.Time
}

func newOrderStatusChangedEvent(orderID kernel.UUID, oldStatus, newStatus Status) *OrderStatusChangedEvent {
	return &OrderStatusChangedEvent{
		eventID:    kernel.NewUUID(),
		orderID:    orderID,
		oldStatus:  oldStatus,
		newStatus:  newStatus,
		occurredAt: time.Now().UTC(),
	}
}

// EventID returns the unique identifier of this event instance.
func (e *OrderStatusChangedEvent) EventID() kernel.UUID { return e.eventID }

// EventType returns EventTypeOrderStatusChanged.
func (e *OrderStatusChangedEvent) EventType() string { return EventTypeOrderStatusChanged }

// AggregateID returns the identifier of the order whose status changed.
func (e *OrderStatusChangedEvent) AggregateID() kernel.UUID { return e.orderID }

// OccurredAt returns when the event was recorded.
func (e *OrderStatusChangedEvent) OccurredAt() time.Time { return e.occurredAt }

// OrderID returns the identifier of the order whose status changed.
func (e *OrderStatusChangedEvent) OrderID() kernel.UUID { return e.orderID }

// OldStatus returns the status before the transition.
func (e *OrderStatusChangedEvent) OldStatus() Status { return e.oldStatus }

// NewStatus returns the status after the transition.
func (e *OrderStatusChangedEvent) NewStatus() Status { return e.newStatus }
