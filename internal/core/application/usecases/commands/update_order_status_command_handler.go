package commands

import (
	"context"
	"fmt"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles validated order status transitions.
// The aggregate decides whether the transition is legal; the handler owns the
// transaction and the post-commit side effects.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	notifier   ports.Notifier
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	notifier ports.Notifier,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		notifier:   notifier,
	}
}

// Handle processes the status change command.
// An illegal transition aborts before any write. Once the commit succeeds,
// publish and notify failures are reported through SideEffects and never roll
// back the persisted status.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, SideEffects, error) {
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

	oldStatus := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.NewStatus()); err != nil {
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
	if err = h.notifier.SendOrderStatusUpdate(ctx, aggregate, oldStatus); err != nil {
		sideEffects.NotifyError = fmt.Errorf("%w: %w", ErrNotifyFailed, err)
	}

	return aggregate, sideEffects, nil
}
