package postgres_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	postgres_adapter "ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/productrepo"
	"ordering/internal/adapters/out/postgres/userrepo"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&userrepo.UserDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_items, orders, products, users CASCADE").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.UserRepository(), "First instance should provide user repository")
	suite.NotNil(uow1.ProductRepository(), "First instance should provide product repository")
	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_OrderPlacementWorkflow runs the full placement sequence across
// all three repositories within a single transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderPlacementWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	owner := suite.createTestUser()
	err = uow.UserRepository().Add(ctx, owner)
	suite.Require().NoError(err)

	testProduct := suite.createTestProduct()
	err = uow.ProductRepository().Add(ctx, testProduct)
	suite.Require().NoError(err)

	testOrder := suite.createTestOrder(owner, testProduct)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// The order is visible within the transaction before commit.
	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, retrievedOrder.Status())
	suite.Equal(owner.ID(), retrievedOrder.User().ID())
	suite.Require().Len(retrievedOrder.Items(), 1)
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	owner := suite.createTestUser()
	err = uow.UserRepository().Add(ctx, owner)
	suite.Require().NoError(err)

	testProduct := suite.createTestProduct()
	err = uow.ProductRepository().Add(ctx, testProduct)
	suite.Require().NoError(err)

	testOrder := suite.createTestOrder(owner, testProduct)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.UserRepository().Get(ctx, owner.ID())
	suite.Require().Error(err, "User should not exist after rollback")

	_, err = newUow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().Error(err, "Product should not exist after rollback")

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	user1 := suite.createTestUser()
	user2 := suite.createTestUser()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.UserRepository().Add(ctx, user1)
	suite.Require().NoError(err)

	err = uow2.UserRepository().Add(ctx, user2)
	suite.Require().NoError(err)

	_, err = uow1.UserRepository().Get(ctx, user1.ID())
	suite.Require().NoError(err, "UOW1 should see user1")

	_, err = uow1.UserRepository().Get(ctx, user2.ID())
	suite.Require().Error(err, "UOW1 should not see user2")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.UserRepository().Get(ctx, user1.ID())
	suite.Require().NoError(err, "User1 should persist after commit")

	_, err = newUow.UserRepository().Get(ctx, user2.ID())
	suite.Require().Error(err, "User2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	owner := suite.createTestUser()
	err := uow.UserRepository().Add(ctx, owner)
	suite.Require().NoError(err)

	retrievedUser, err := uow.UserRepository().Get(ctx, owner.ID())
	suite.Require().NoError(err)
	suite.Equal(owner.ID(), retrievedUser.ID())

	newUow := suite.factory.Create()
	retrievedUser, err = newUow.UserRepository().Get(ctx, owner.ID())
	suite.Require().NoError(err)
	suite.Equal(owner.ID(), retrievedUser.ID())
}

// TestUnitOfWork_OrderLifecycleWorkflow walks an order from placement through
// delivery with each transition persisted in its own transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderLifecycleWorkflow() {
	ctx := context.Background()

	setupUow := suite.factory.Create()
	suite.Require().NoError(setupUow.Begin(ctx))

	owner := suite.createTestUser()
	suite.Require().NoError(setupUow.UserRepository().Add(ctx, owner))
	testProduct := suite.createTestProduct()
	suite.Require().NoError(setupUow.ProductRepository().Add(ctx, testProduct))
	testOrder := suite.createTestOrder(owner, testProduct)
	suite.Require().NoError(setupUow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(setupUow.Commit(ctx))

	path := []order.Status{
		order.Confirmed, order.Processing, order.Paid, order.Shipped, order.Delivered,
	}
	for _, nextStatus := range path {
		uow := suite.factory.Create()
		suite.Require().NoError(uow.Begin(ctx))

		aggregate, err := uow.OrderRepository().Get(ctx, testOrder.ID())
		suite.Require().NoError(err)
		suite.Require().NoError(aggregate.ChangeStatus(nextStatus))
		aggregate.ClearDomainEvents()
		suite.Require().NoError(uow.OrderRepository().Update(ctx, aggregate))
		suite.Require().NoError(uow.Commit(ctx))
	}

	finalUow := suite.factory.Create()
	retrievedOrder, err := finalUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, retrievedOrder.Status())
}

// TestUnitOfWork_QueryConsistency verifies status scans see committed state only.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_QueryConsistency() {
	ctx := context.Background()
	uow := suite.factory.Create()

	owner := suite.createTestUser()
	suite.Require().NoError(uow.UserRepository().Add(ctx, owner))
	testProduct := suite.createTestProduct()
	suite.Require().NoError(uow.ProductRepository().Add(ctx, testProduct))

	order1 := suite.createTestOrder(owner, testProduct)
	order2 := suite.createTestOrder(owner, testProduct)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, order1))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, order2))

	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(order1.ChangeStatus(order.Confirmed))
	order1.ClearDomainEvents()
	suite.Require().NoError(uow.OrderRepository().Update(ctx, order1))

	pendingOrders, err := uow.OrderRepository().GetByStatus(ctx, order.Pending)
	suite.Require().NoError(err)
	suite.Require().Len(pendingOrders, 1)
	suite.Equal(order2.ID(), pendingOrders[0].ID(), "Should find the untouched order")

	confirmedOrders, err := uow.OrderRepository().GetByStatus(ctx, order.Confirmed)
	suite.Require().NoError(err)
	suite.Require().Len(confirmedOrders, 1)
	suite.Equal(order1.ID(), confirmedOrders[0].ID())

	suite.Require().NoError(uow.Commit(ctx))

	newUow := suite.factory.Create()
	confirmedOrders, err = newUow.OrderRepository().GetByStatus(ctx, order.Confirmed)
	suite.Require().NoError(err)
	suite.Require().Len(confirmedOrders, 1)
	suite.Equal(order1.ID(), confirmedOrders[0].ID())
}

var fixtureSeq atomic.Int64

// createTestUser creates a valid user with a unique email.
func (suite *UnitOfWorkIntegrationTestSuite) createTestUser() *user.User {
	tag := fixtureSeq.Add(1)
	email, err := kernel.NewEmail(fmt.Sprintf("ann-%d@example.com", tag))
	suite.Require().NoError(err)
	testUser, err := user.NewUser(email, "Ann")
	suite.Require().NoError(err)
	return testUser
}

// createTestProduct creates a valid product with a unique SKU.
func (suite *UnitOfWorkIntegrationTestSuite) createTestProduct() *product.Product {
	tag := fixtureSeq.Add(1)
	price, err := kernel.NewMoneyFromFloat(10.00, "USD")
	suite.Require().NoError(err)
	testProduct, err := product.NewProduct("Widget", "A widget", price, fmt.Sprintf("SKU-%d", tag), 100)
	suite.Require().NoError(err)
	return testProduct
}

// createTestOrder creates a pending order with one item line and a clear
// event buffer.
func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(owner *user.User, p *product.Product) *order.Order {
	item, err := order.NewOrderItem(p, 2, p.Price())
	suite.Require().NoError(err)
	testOrder, err := order.NewOrder(owner, []*order.OrderItem{item})
	suite.Require().NoError(err)
	testOrder.ClearDomainEvents()
	return testOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
