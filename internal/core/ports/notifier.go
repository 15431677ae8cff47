package ports

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// Notifier sends customer-facing notifications about order activity.
// Notification failures must not fail the workflow that triggered them;
// handlers report them in the result instead.
type Notifier interface {
	// SendOrderConfirmation notifies the customer that the order was placed.
	SendOrderConfirmation(ctx context.Context, aggregate *order.Order) error

	// SendOrderStatusUpdate notifies the customer about a status change.
	SendOrderStatusUpdate(ctx context.Context, aggregate *order.Order, oldStatus order.Status) error

	// SendOrderCancellation notifies the customer that the order was cancelled.
	SendOrderCancellation(ctx context.Context, aggregate *order.Order) error
}
