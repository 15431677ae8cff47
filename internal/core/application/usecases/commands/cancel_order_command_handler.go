package commands

import (
	"context"
	"fmt"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// CancelOrderCommandHandler handles order cancellation.
// Cancellation is only possible while the order is PENDING or CONFIRMED;
// the aggregate enforces that rule.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	notifier   ports.Notifier
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	notifier ports.Notifier,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		notifier:   notifier,
	}
}

// Handle processes the cancellation command.
// A non-cancellable order aborts before any write. Once the commit succeeds,
// publish and notify failures are reported through SideEffects and never roll
// back the cancellation.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, SideEffects, error) {
	if err := cmd.Validate(); err != nil {
		return nil, SideEffects{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, SideEffects{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, SideEffects{}, err
	}

	if err = aggregate.Cancel(); err != nil {
		return nil, SideEffects{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, SideEffects{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, SideEffects{}, err
	}

	sideEffects := SideEffects{
		PublishError: publishAndClear(ctx, h.publisher, aggregate),
	}
	if err = h.notifier.SendOrderCancellation(ctx, aggregate); err != nil {
		sideEffects.NotifyError = fmt.Errorf("%w: %w", ErrNotifyFailed, err)
	}

	return aggregate, sideEffects, nil
}
