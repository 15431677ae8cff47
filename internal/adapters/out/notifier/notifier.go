// Package notifier provides a notifier that simulates delivery by writing
// structured log records. It stands in for a real email or push gateway.
package notifier

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/order"
)

// LogNotifier writes order notifications to the application log.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier backed by the given logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "Notifier")}
}

// SendOrderConfirmation notifies the order's owner that the order was placed.
func (n *LogNotifier) SendOrderConfirmation(_ context.Context, aggregate *order.Order) error {
	total := ""
	if amount, err := aggregate.TotalAmount(); err == nil {
		total = amount.String()
	}

	n.logger.Info("order confirmation sent",
		"orderId", aggregate.ID().String(),
		"recipient", aggregate.User().Email().String(),
		"totalAmount", total)
	return nil
}

// SendOrderStatusUpdate notifies the order's owner about a status change.
func (n *LogNotifier) SendOrderStatusUpdate(_ context.Context, aggregate *order.Order, oldStatus order.Status) error {
	n.logger.Info("order status update sent",
		"orderId", aggregate.ID().String(),
		"recipient", aggregate.User().Email().String(),
		"oldStatus", oldStatus.String(),
		"newStatus", aggregate.Status().String())
	return nil
}

// SendOrderCancellation notifies the order's owner that the order was cancelled.
func (n *LogNotifier) SendOrderCancellation(_ context.Context, aggregate *order.Order) error {
	n.logger.Info("order cancellation sent",
		"orderId", aggregate.ID().String(),
		"recipient", aggregate.User().Email().String())
	return nil
}
