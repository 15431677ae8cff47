// Package eventbus provides an in-process event publisher with typed
// subscribers. Delivery is synchronous from the caller's perspective: Publish
// returns after every subscriber has seen the event, so workflows can clear
// the aggregate's buffer once it returns.
package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"ordering/internal/core/domain/model/order"
)

// Subscriber consumes published domain events. A failing subscriber fails
// the publish; the caller decides how to report it.
type Subscriber func(ctx context.Context, event order.DomainEvent) error

// Publisher fans published events out to subscribers registered per event
// type. Safe for concurrent use.
type Publisher struct {
	mu          sync.RWMutex
	subscribers map[string][]Subscriber
	logger      *slog.Logger
}

// NewPublisher creates an empty in-process publisher.
func NewPublisher(logger *slog.Logger) *Publisher {
	return &Publisher{
		subscribers: make(map[string][]Subscriber),
		logger:      logger.With("component", "EventBus"),
	}
}

// Subscribe registers a subscriber for one event type
// (order.EventTypeOrderCreated, order.EventTypeOrderStatusChanged).
func (p *Publisher) Subscribe(eventType string, subscriber Subscriber) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.subscribers[eventType] = append(p.subscribers[eventType], subscriber)
}

// Publish delivers a single event to every subscriber of its type, stopping
// at the first subscriber failure. An event type without subscribers is a
// no-op.
func (p *Publisher) Publish(ctx context.Context, event order.DomainEvent) error {
	p.mu.RLock()
	subscribers := append([]Subscriber(nil), p.subscribers[event.EventType()]...)
	p.mu.RUnlock()

	for _, subscriber := range subscribers {
		if err := subscriber(ctx, event); err != nil {
			return err
		}
	}

	p.logger.Debug("event published",
		"eventType", event.EventType(),
		"aggregateId", event.AggregateID().String())
	return nil
}

// PublishMany delivers events in order, stopping at the first failure.
func (p *Publisher) PublishMany(ctx context.Context, events []order.DomainEvent) error {
	for _, event := range events {
		if err := p.Publish(ctx, event); err != nil {
			return err
		}
	}
	return nil
}
