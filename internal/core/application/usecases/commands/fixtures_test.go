package commands_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

func testUser(t *testing.T) *user.User {
	t.Helper()
	email, err := kernel.NewEmail("ann@example.com")
	require.NoError(t, err)
	u, err := user.NewUser(email, "Ann")
	require.NoError(t, err)
	return u
}

func testProduct(t *testing.T, sku string, price float64, stock int) *product.Product {
	t.Helper()
	money, err := kernel.NewMoneyFromFloat(price, "USD")
	require.NoError(t, err)
	p, err := product.NewProduct("Widget "+sku, "A widget", money, sku, stock)
	require.NoError(t, err)
	return p
}

func testOrder(t *testing.T, u *user.User, p *product.Product, quantity int) *order.Order {
	t.Helper()
	item, err := order.NewOrderItem(p, quantity, p.Price())
	require.NoError(t, err)
	o, err := order.NewOrder(u, []*order.OrderItem{item})
	require.NoError(t, err)
	o.ClearDomainEvents()
	return o
}
