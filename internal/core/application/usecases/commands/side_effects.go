package commands

import (
	"context"
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

var (
	// ErrPublishFailed classifies event delivery failures after a successful
	// commit. The persisted write stands; the caller decides how to report it.
	ErrPublishFailed = errors.New("failed to publish domain events")

	// ErrNotifyFailed classifies notification failures after a successful
	// commit. The persisted write stands; the caller decides how to report it.
	ErrNotifyFailed = errors.New("failed to send notification")
)

// SideEffects reports the outcome of the post-commit steps of a workflow.
// Publish and notify run after the transaction commits, so their failures
// never roll back the write; they are carried here instead of in the
// handler's error return.
type SideEffects struct {
	PublishError error
	NotifyError  error
}

// FirstError returns the publish failure if any, otherwise the notify
// failure, otherwise nil.
func (s SideEffects) FirstError() error {
	if s.PublishError != nil {
		return s.PublishError
	}
	return s.NotifyError
}

// publishAndClear delivers the aggregate's buffered events and clears the
// buffer on success. The buffer is kept intact on failure so the events are
// not lost to a retry.
func publishAndClear(ctx context.Context, publisher ports.EventPublisher, aggregate *order.Order) error {
	events := aggregate.DomainEvents()
	if len(events) == 0 {
		return nil
	}

	if err := publisher.PublishMany(ctx, events); err != nil {
		return fmt.Errorf("%w: %w", ErrPublishFailed, err)
	}

	aggregate.ClearDomainEvents()
	return nil
}
