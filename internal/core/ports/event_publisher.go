package ports

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// EventPublisher delivers domain events to interested consumers.
// Workflows publish an aggregate's buffered events after the owning
// transaction commits, then clear the buffer.
type EventPublisher interface {
	// Publish delivers a single domain event.
	Publish(ctx context.Context, event order.DomainEvent) error

	// PublishMany delivers events in order, stopping at the first failure.
	PublishMany(ctx context.Context, events []order.DomainEvent) error
}
