package commands

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// AdvanceOrdersCommandHandler runs one scan of the automatic order
// progression. Each eligible order is advanced in its own transaction so one
// order's failure never aborts the rest of the scan; failures are logged and
// the scan moves on.
type AdvanceOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewAdvanceOrdersCommandHandler creates a handler for progression scans.
func NewAdvanceOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) AdvanceOrdersCommandHandler {
	return AdvanceOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "AdvanceOrdersCommandHandler"),
	}
}

// Handle processes one progression scan and returns how many orders advanced.
// The returned error covers the scan itself; per-order save failures are
// logged, not escalated.
func (h *AdvanceOrdersCommandHandler) Handle(ctx context.Context, cmd AdvanceOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	candidates, err := h.scan(ctx, cmd.FromStatus())
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	advanced := 0
	for _, candidate := range candidates {
		if h.ageIn(cmd.FromStatus(), candidate, now) < cmd.Dwell() {
			continue
		}

		if err := h.advanceOne(ctx, candidate.ID(), cmd.ToStatus()); err != nil {
			h.logger.Error("failed to advance order",
				"orderId", candidate.ID().String(),
				"fromStatus", cmd.FromStatus().String(),
				"toStatus", cmd.ToStatus().String(),
				"error", err)
			continue
		}
		advanced++
	}

	return advanced, nil
}

func (h *AdvanceOrdersCommandHandler) scan(ctx context.Context, status order.Status) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.OrderRepository().GetByStatus(ctx, status)
}

// ageIn measures how long the order has sat in the scanned status: since
// creation for PENDING orders, since the last update otherwise.
func (h *AdvanceOrdersCommandHandler) ageIn(status order.Status, aggregate *order.Order, now time.Time) time.Duration {
	if status == order.Pending {
		return now.Sub(aggregate.CreatedAt())
	}
	return now.Sub(aggregate.UpdatedAt())
}

// advanceOne moves a single order forward in its own transaction. The order
// is re-read inside the transaction: it may have moved on since the scan, in
// which case the transition fails and the order is skipped.
func (h *AdvanceOrdersCommandHandler) advanceOne(ctx context.Context, orderID kernel.UUID, toStatus order.Status) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(toStatus); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = publishAndClear(ctx, h.publisher, aggregate); err != nil {
		h.logger.Error("failed to publish progression events",
			"orderId", aggregate.ID().String(),
			"error", err)
	}

	return nil
}
