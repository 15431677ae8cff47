package commands

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrAdvanceOrdersCommandIsNotConstructed = errors.New(
	"AdvanceOrdersCommand must be created via NewAdvanceOrdersCommand constructor",
)

// AdvanceOrdersCommand represents one scan of the automatic order
// progression: advance every order sitting in fromStatus for at least the
// dwell time to the next lifecycle stage.
//
// Only the early stages progress automatically: PENDING orders advance to
// CONFIRMED and CONFIRMED orders advance to PROCESSING. Later stages require
// explicit status updates.
type AdvanceOrdersCommand struct { //nolint:recvcheck //using for validation
	fromStatus order.Status
	dwell      time.Duration

	guard guard.ConstructorGuard
}

// NewAdvanceOrdersCommand creates a command for one progression scan.
// The source status must be PENDING or CONFIRMED and the dwell time must not
// be negative.
func NewAdvanceOrdersCommand(fromStatus order.Status, dwell time.Duration) (AdvanceOrdersCommand, error) {
	advanceCommand := AdvanceOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		advanceCommand.setFromStatus(fromStatus),
		advanceCommand.setDwell(dwell),
	); err != nil {
		return AdvanceOrdersCommand{}, err
	}

	return advanceCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrdersCommandIsNotConstructed)
}

// FromStatus returns the status the scan selects orders from.
func (c AdvanceOrdersCommand) FromStatus() order.Status {
	return c.fromStatus
}

// ToStatus returns the status eligible orders advance to.
func (c AdvanceOrdersCommand) ToStatus() order.Status {
	if c.fromStatus == order.Pending {
		return order.Confirmed
	}
	return order.Processing
}

// Dwell returns the minimum time an order must have sat in fromStatus
// before the scan advances it.
func (c AdvanceOrdersCommand) Dwell() time.Duration {
	return c.dwell
}

func (c *AdvanceOrdersCommand) setFromStatus(fromStatus order.Status) error {
	if fromStatus != order.Pending && fromStatus != order.Confirmed {
		return errs.NewValueIsInvalidErrorWithCause(
			"from status",
			fmt.Errorf("%s does not progress automatically", fromStatus),
		)
	}

	c.fromStatus = fromStatus
	return nil
}

func (c *AdvanceOrdersCommand) setDwell(dwell time.Duration) error {
	if dwell < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"dwell",
			fmt.Errorf("%s is negative", dwell),
		)
	}

	c.dwell = dwell
	return nil
}
