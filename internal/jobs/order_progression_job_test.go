package jobs

import (
	"context"
	"log/slog"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderRepository struct {
	scanned []order.Status
}

func (r *fakeOrderRepository) Add(context.Context, *order.Order) error    { return nil }
func (r *fakeOrderRepository) Update(context.Context, *order.Order) error { return nil }

func (r *fakeOrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	return nil, errs.NewObjectNotFoundError("order", id.String())
}

func (r *fakeOrderRepository) GetByUserID(context.Context, kernel.UUID) ([]*order.Order, error) {
	return nil, nil
}

func (r *fakeOrderRepository) GetByStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	r.scanned = append(r.scanned, status)
	return nil, nil
}

func (r *fakeOrderRepository) GetAll(context.Context) ([]*order.Order, error) { return nil, nil }

func (r *fakeOrderRepository) Exists(context.Context, kernel.UUID) (bool, error) {
	return false, nil
}

func (r *fakeOrderRepository) Delete(_ context.Context, id kernel.UUID) error {
	return errs.NewObjectNotFoundError("order", id.String())
}

type fakeOrderUoW struct {
	repo *fakeOrderRepository
}

func (u *fakeOrderUoW) Begin(context.Context) error    { return nil }
func (u *fakeOrderUoW) Commit(context.Context) error   { return nil }
func (u *fakeOrderUoW) Rollback(context.Context) error { return nil }

func (u *fakeOrderUoW) OrderRepository() ports.OrderRepository { return u.repo }

type fakeOrderUoWFactory struct {
	repo *fakeOrderRepository
}

func (f fakeOrderUoWFactory) Create() commands.OrderUoW { return &fakeOrderUoW{repo: f.repo} }

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, order.DomainEvent) error       { return nil }
func (noopPublisher) PublishMany(context.Context, []order.DomainEvent) error { return nil }

func newTestHandler(repo *fakeOrderRepository) commands.AdvanceOrdersCommandHandler {
	return commands.NewAdvanceOrdersCommandHandler(
		fakeOrderUoWFactory{repo: repo}, noopPublisher{}, slog.Default())
}

func TestOrderProgressionJob_StartAndStop(t *testing.T) {
	t.Run("should register both schedules and stop cleanly", func(t *testing.T) {
		// Arrange
		repo := &fakeOrderRepository{}
		job := NewOrderProgressionJob(newTestHandler(repo), slog.Default())

		// Act
		err := job.Start()
		job.Stop()

		// Assert
		assert.NoError(t, err)
		assert.Len(t, job.cron.Entries(), 2)
	})
}

func TestOrderProgressionJob_Advance(t *testing.T) {
	t.Run("should scan pending orders on the pending schedule", func(t *testing.T) {
		// Arrange
		repo := &fakeOrderRepository{}
		job := NewOrderProgressionJob(newTestHandler(repo), slog.Default())

		// Act
		job.advance(order.Pending, pendingDwell)

		// Assert
		require.Len(t, repo.scanned, 1)
		assert.Equal(t, order.Pending, repo.scanned[0])
	})

	t.Run("should scan confirmed orders on the confirmed schedule", func(t *testing.T) {
		// Arrange
		repo := &fakeOrderRepository{}
		job := NewOrderProgressionJob(newTestHandler(repo), slog.Default())

		// Act
		job.advance(order.Confirmed, confirmedDwell)

		// Assert
		require.Len(t, repo.scanned, 1)
		assert.Equal(t, order.Confirmed, repo.scanned[0])
	})
}

func TestJobManager(t *testing.T) {
	t.Run("should start and stop all jobs", func(t *testing.T) {
		// Arrange
		repo := &fakeOrderRepository{}
		manager := NewJobManager(newTestHandler(repo), slog.Default())

		// Act
		err := manager.StartAll()
		manager.StopAll()

		// Assert
		assert.NoError(t, err)
	})
}
