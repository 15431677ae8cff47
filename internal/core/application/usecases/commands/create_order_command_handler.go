package commands

import (
	"context"
	"fmt"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for placing orders.
// Validates the user and every requested line against live inventory, builds
// the aggregate, persists it atomically, then publishes events and notifies.
//
// Stock is checked but never decremented here: inventory commitment is
// deferred to a later fulfillment step outside this workflow.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
	notifier   ports.Notifier
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	notifier ports.Notifier,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		notifier:   notifier,
	}
}

// Handle processes the order placement command.
//
// Steps run strictly in sequence. Any failure before the commit aborts the
// workflow with no partial state: no order is created and no stock is
// reserved. Once the commit succeeds, publish and notify failures are
// reported through SideEffects and never roll back the persisted order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, SideEffects, error) {
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

	userRepo := uow.UserRepository()
	if _, err := userRepo.Get(ctx, cmd.UserID()); err != nil {
		return nil, SideEffects{}, err
	}

	items, err := h.buildItems(ctx, uow.ProductRepository(), cmd.Items())
	if err != nil {
		return nil, SideEffects{}, err
	}

	// the user may have been removed while the lines were resolved
	aggregateUser, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return nil, SideEffects{}, err
	}

	aggregate, err := order.NewOrder(aggregateUser, items)
	if err != nil {
		return nil, SideEffects{}, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, SideEffects{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, SideEffects{}, err
	}

	sideEffects := SideEffects{
		PublishError: publishAndClear(ctx, h.publisher, aggregate),
	}
	if err = h.notifier.SendOrderConfirmation(ctx, aggregate); err != nil {
		sideEffects.NotifyError = fmt.Errorf("%w: %w", ErrNotifyFailed, err)
	}

	return aggregate, sideEffects, nil
}

// buildItems resolves and prices every requested line. All-or-nothing: the
// first failing line aborts the whole build.
func (h *CreateOrderCommandHandler) buildItems(
	ctx context.Context,
	productRepo ports.ProductRepository,
	lines []OrderItemLine,
) ([]*order.OrderItem, error) {
	items := make([]*order.OrderItem, 0, len(lines))
	for _, line := range lines {
		p, err := productRepo.Get(ctx, line.ProductID())
		if err != nil {
			return nil, err
		}

		if !p.HasStock(line.Quantity()) {
			return nil, &product.InsufficientStockError{
				ProductName: p.Name(),
				Available:   p.Stock(),
				Required:    line.Quantity(),
			}
		}

		item, err := order.NewOrderItem(p, line.Quantity(), line.UnitPrice())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
