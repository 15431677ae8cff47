package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// Progression schedules. Pending orders are confirmed every thirty seconds
// once they have sat for five seconds; confirmed orders move to processing
// every minute once they have sat for ten seconds.
const (
	pendingSchedule = "*/30 * * * * *"
	pendingDwell    = 5 * time.Second

	confirmedSchedule = "0 * * * * *"
	confirmedDwell    = 10 * time.Second
)

// OrderProgressionJob advances orders through the early lifecycle stages on a
// schedule, standing in for a human operator confirming and picking orders.
type OrderProgressionJob struct {
	handler commands.AdvanceOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderProgressionJob creates a job that advances pending and confirmed
// orders using AdvanceOrdersCommandHandler.
func NewOrderProgressionJob(handler commands.AdvanceOrdersCommandHandler, logger *slog.Logger) *OrderProgressionJob {
	return &OrderProgressionJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_progression_job"),
	}
}

// Start registers both progression schedules and begins running them.
func (j *OrderProgressionJob) Start() error {
	if _, err := j.cron.AddFunc(pendingSchedule, func() {
		j.advance(order.Pending, pendingDwell)
	}); err != nil {
		return err
	}

	if _, err := j.cron.AddFunc(confirmedSchedule, func() {
		j.advance(order.Confirmed, confirmedDwell)
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order progression job started")
	return nil
}

// Stop stops the order progression job.
func (j *OrderProgressionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order progression job stopped")
}

func (j *OrderProgressionJob) advance(fromStatus order.Status, dwell time.Duration) {
	ctx := context.Background()

	cmd, err := commands.NewAdvanceOrdersCommand(fromStatus, dwell)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order progression job misconfigured", "error", err)
		return
	}

	advanced, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order progression job failed",
			"fromStatus", fromStatus.String(), "error", err)
		return
	}

	if advanced > 0 {
		j.logger.InfoContext(ctx, "Orders advanced",
			"fromStatus", fromStatus.String(), "count", advanced)
	}
}
