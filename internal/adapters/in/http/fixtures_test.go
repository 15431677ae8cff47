package http

import (
	"context"
	"sort"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

// memStore is a shared in-memory backing store for the fake repositories,
// letting handler tests run the full command stack without a database.
type memStore struct {
	users    map[kernel.UUID]*user.User
	products map[kernel.UUID]*product.Product
	orders   map[kernel.UUID]*order.Order
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[kernel.UUID]*user.User),
		products: make(map[kernel.UUID]*product.Product),
		orders:   make(map[kernel.UUID]*order.Order),
	}
}

type memUoW struct {
	store *memStore
}

func (u *memUoW) Begin(context.Context) error    { return nil }
func (u *memUoW) Commit(context.Context) error   { return nil }
func (u *memUoW) Rollback(context.Context) error { return nil }

func (u *memUoW) UserRepository() ports.UserRepository {
	return &memUserRepository{store: u.store}
}

func (u *memUoW) ProductRepository() ports.ProductRepository {
	return &memProductRepository{store: u.store}
}

func (u *memUoW) OrderRepository() ports.OrderRepository {
	return &memOrderRepository{store: u.store}
}

type memUserRepository struct {
	store *memStore
}

func (r *memUserRepository) Add(_ context.Context, aggregate *user.User) error {
	r.store.users[aggregate.ID()] = aggregate
	return nil
}

func (r *memUserRepository) Get(_ context.Context, id kernel.UUID) (*user.User, error) {
	if aggregate, ok := r.store.users[id]; ok {
		return aggregate, nil
	}
	return nil, errs.NewObjectNotFoundError("user", id.String())
}

func (r *memUserRepository) GetByEmail(_ context.Context, email kernel.Email) (*user.User, error) {
	for _, aggregate := range r.store.users {
		if aggregate.Email().IsEqual(email) {
			return aggregate, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("user", email.String())
}

func (r *memUserRepository) Exists(_ context.Context, id kernel.UUID) (bool, error) {
	_, ok := r.store.users[id]
	return ok, nil
}

func (r *memUserRepository) Delete(_ context.Context, id kernel.UUID) error {
	if _, ok := r.store.users[id]; !ok {
		return errs.NewObjectNotFoundError("user", id.String())
	}
	delete(r.store.users, id)
	return nil
}

type memProductRepository struct {
	store *memStore
}

func (r *memProductRepository) Add(_ context.Context, aggregate *product.Product) error {
	r.store.products[aggregate.ID()] = aggregate
	return nil
}

func (r *memProductRepository) Update(_ context.Context, aggregate *product.Product) error {
	if _, ok := r.store.products[aggregate.ID()]; !ok {
		return errs.NewObjectNotFoundError("product", aggregate.ID().String())
	}
	r.store.products[aggregate.ID()] = aggregate
	return nil
}

func (r *memProductRepository) Get(_ context.Context, id kernel.UUID) (*product.Product, error) {
	if aggregate, ok := r.store.products[id]; ok {
		return aggregate, nil
	}
	return nil, errs.NewObjectNotFoundError("product", id.String())
}

func (r *memProductRepository) GetBySKU(_ context.Context, sku string) (*product.Product, error) {
	for _, aggregate := range r.store.products {
		if aggregate.SKU() == sku {
			return aggregate, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("product", sku)
}

func (r *memProductRepository) GetAvailable(context.Context) ([]*product.Product, error) {
	available := make([]*product.Product, 0)
	for _, aggregate := range r.store.products {
		if aggregate.IsAvailable() {
			available = append(available, aggregate)
		}
	}
	return available, nil
}

func (r *memProductRepository) Exists(_ context.Context, id kernel.UUID) (bool, error) {
	_, ok := r.store.products[id]
	return ok, nil
}

func (r *memProductRepository) Delete(_ context.Context, id kernel.UUID) error {
	if _, ok := r.store.products[id]; !ok {
		return errs.NewObjectNotFoundError("product", id.String())
	}
	delete(r.store.products, id)
	return nil
}

type memOrderRepository struct {
	store *memStore
}

func (r *memOrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	r.store.orders[aggregate.ID()] = aggregate
	return nil
}

func (r *memOrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if _, ok := r.store.orders[aggregate.ID()]; !ok {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	r.store.orders[aggregate.ID()] = aggregate
	return nil
}

func (r *memOrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if aggregate, ok := r.store.orders[id]; ok {
		return aggregate, nil
	}
	return nil, errs.NewObjectNotFoundError("order", id.String())
}

func (r *memOrderRepository) GetByUserID(_ context.Context, userID kernel.UUID) ([]*order.Order, error) {
	matched := make([]*order.Order, 0)
	for _, aggregate := range r.store.orders {
		if aggregate.User().ID().IsEqual(userID) {
			matched = append(matched, aggregate)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt().After(matched[j].CreatedAt())
	})
	return matched, nil
}

func (r *memOrderRepository) GetByStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	matched := make([]*order.Order, 0)
	for _, aggregate := range r.store.orders {
		if aggregate.Status() == status {
			matched = append(matched, aggregate)
		}
	}
	return matched, nil
}

func (r *memOrderRepository) GetAll(context.Context) ([]*order.Order, error) {
	matched := make([]*order.Order, 0, len(r.store.orders))
	for _, aggregate := range r.store.orders {
		matched = append(matched, aggregate)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt().After(matched[j].CreatedAt())
	})
	return matched, nil
}

func (r *memOrderRepository) Exists(_ context.Context, id kernel.UUID) (bool, error) {
	_, ok := r.store.orders[id]
	return ok, nil
}

func (r *memOrderRepository) Delete(_ context.Context, id kernel.UUID) error {
	if _, ok := r.store.orders[id]; !ok {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	delete(r.store.orders, id)
	return nil
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, order.DomainEvent) error { return nil }

func (noopPublisher) PublishMany(context.Context, []order.DomainEvent) error { return nil }

type noopNotifier struct{}

func (noopNotifier) SendOrderConfirmation(context.Context, *order.Order) error { return nil }

func (noopNotifier) SendOrderStatusUpdate(context.Context, *order.Order, order.Status) error {
	return nil
}

func (noopNotifier) SendOrderCancellation(context.Context, *order.Order) error { return nil }

type memUoWFactory struct {
	store *memStore
}

func (f memUoWFactory) Create() commands.UoW { return &memUoW{store: f.store} }

type memUserUoWFactory struct {
	store *memStore
}

func (f memUserUoWFactory) Create() commands.UserUoW { return &memUoW{store: f.store} }

type memProductUoWFactory struct {
	store *memStore
}

func (f memProductUoWFactory) Create() commands.ProductUoW { return &memUoW{store: f.store} }

type memOrderUoWFactory struct {
	store *memStore
}

func (f memOrderUoWFactory) Create() commands.OrderUoW { return &memUoW{store: f.store} }

// newTestServer wires a Server over in-memory storage. The query handlers
// need a live database and stay unwired; tests here cover the command routes.
func newTestServer(store *memStore) *Server {
	return NewServer(
		commands.NewCreateUserCommandHandler(memUserUoWFactory{store: store}),
		commands.NewCreateProductCommandHandler(memProductUoWFactory{store: store}),
		commands.NewCreateOrderCommandHandler(memUoWFactory{store: store}, noopPublisher{}, noopNotifier{}),
		commands.NewUpdateOrderStatusCommandHandler(memOrderUoWFactory{store: store}, noopPublisher{}, noopNotifier{}),
		commands.NewCancelOrderCommandHandler(memOrderUoWFactory{store: store}, noopPublisher{}, noopNotifier{}),
		queries.GetUserQueryHandler{},
		queries.GetProductsQueryHandler{},
		queries.GetOrderQueryHandler{},
		queries.GetOrdersQueryHandler{},
	)
}

func storedUser(t *testing.T, store *memStore) *user.User {
	t.Helper()
	email, err := kernel.NewEmail("ann@example.com")
	require.NoError(t, err)
	u, err := user.NewUser(email, "Ann")
	require.NoError(t, err)
	store.users[u.ID()] = u
	return u
}

func storedProduct(t *testing.T, store *memStore, sku string, price float64, stock int) *product.Product {
	t.Helper()
	money, err := kernel.NewMoneyFromFloat(price, "USD")
	require.NoError(t, err)
	p, err := product.NewProduct("Widget "+sku, "A widget", money, sku, stock)
	require.NoError(t, err)
	store.products[p.ID()] = p
	return p
}

func storedOrder(t *testing.T, store *memStore, u *user.User, p *product.Product, quantity int) *order.Order {
	t.Helper()
	item, err := order.NewOrderItem(p, quantity, p.Price())
	require.NoError(t, err)
	o, err := order.NewOrder(u, []*order.OrderItem{item})
	require.NoError(t, err)
	o.ClearDomainEvents()
	store.orders[o.ID()] = o
	return o
}
