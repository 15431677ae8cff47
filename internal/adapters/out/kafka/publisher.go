// Package kafka provides a Kafka-backed event publisher. Domain events are
// serialized to JSON envelopes and written to a single topic, keyed by order
// identifier so one order's events stay in one partition.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"ordering/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// eventEnvelope is the wire shape of one published domain event.
type eventEnvelope struct {
	EventID     string `json:"event_id"`
	EventType   string `json:"event_type"`
	OrderID     string `json:"order_id"`
	OccurredAt  string `json:"occurred_at"`
	UserID      string `json:"user_id,omitempty"`
	TotalAmount string `json:"total_amount,omitempty"`
	Currency    string `json:"currency,omitempty"`
	OldStatus   string `json:"old_status,omitempty"`
	NewStatus   string `json:"new_status,omitempty"`
}

// Publisher writes domain events to a Kafka topic.
type Publisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewPublisher creates a publisher for the given brokers (comma separated)
// and topic.
func NewPublisher(brokersCSV, topic string, logger *slog.Logger) *Publisher {
	brokers := make([]string, 0)
	for _, b := range strings.Split(brokersCSV, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}

	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
		logger: logger.With("component", "KafkaPublisher"),
	}
}

// Publish writes a single domain event.
func (p *Publisher) Publish(ctx context.Context, event order.DomainEvent) error {
	envelope, err := envelopeOf(event)
	if err != nil {
		return err
	}

	value, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	message := kafka.Message{
		Key:   []byte(envelope.OrderID),
		Value: value,
		Time:  time.Now().UTC(),
	}
	if err = p.writer.WriteMessages(ctx, message); err != nil {
		return err
	}

	p.logger.Debug("event written",
		"eventType", envelope.EventType,
		"orderId", envelope.OrderID)
	return nil
}

// PublishMany writes events in order, stopping at the first failure.
func (p *Publisher) PublishMany(ctx context.Context, events []order.DomainEvent) error {
	for _, event := range events {
		if err := p.Publish(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

func envelopeOf(event order.DomainEvent) (eventEnvelope, error) {
	envelope := eventEnvelope{
		EventID:    event.EventID().String(),
		EventType:  event.EventType(),
		OrderID:    event.AggregateID().String(),
		OccurredAt: event.OccurredAt().UTC().Format(time.RFC3339Nano),
	}

	switch e := event.(type) {
	case *order.OrderCreatedEvent:
		envelope.UserID = e.UserID().String()
		envelope.TotalAmount = e.TotalAmount().Amount().StringFixed(2)
		envelope.Currency = e.TotalAmount().Currency()
	case *order.OrderStatusChangedEvent:
		envelope.OldStatus = e.OldStatus().String()
		envelope.NewStatus = e.NewStatus().String()
	default:
		return eventEnvelope{}, fmt.Errorf("unknown event type %s", event.EventType())
	}

	return envelope, nil
}
