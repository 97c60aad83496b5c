package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "shipping/internal/adapters/out/postgres"
	"shipping/internal/adapters/out/postgres/shipmentrepo"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&shipmentrepo.ShipmentDTO{}, &shipmentrepo.ShipmentItemDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE shipments, shipment_items").Error
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

	suite.NotNil(uow1.ShipmentRepository(), "First instance should provide shipment repository")
	suite.NotNil(uow2.ShipmentRepository(), "Second instance should provide shipment repository")
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

// TestUnitOfWork_CommittedShipmentIsVisible verifies repository operations
// within a transaction become visible after commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommittedShipmentIsVisible() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := suite.createTestShipment("order-100")

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	// Visible inside the transaction
	retrieved, err := uow.ShipmentRepository().GetByNumber(ctx, testShipment.Number())
	suite.Require().NoError(err)
	suite.True(testShipment.IsEqual(retrieved))

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Visible from a fresh unit of work after commit
	newUow := suite.factory.Create()
	retrieved, err = newUow.ShipmentRepository().GetByNumber(ctx, testShipment.Number())
	suite.Require().NoError(err)
	suite.True(testShipment.IsEqual(retrieved))
}

// TestUnitOfWork_RollbackDiscardsChanges verifies rolled back writes leave no rows behind.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := suite.createTestShipment("order-200")

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	var count int64
	err = suite.db.Model(&shipmentrepo.ShipmentDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Zero(count, "Rolled back shipment should not be persisted")

	err = suite.db.Model(&shipmentrepo.ShipmentItemDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Zero(count, "Rolled back items should not be persisted")
}

// TestUnitOfWork_RepositoryWithoutTransaction verifies repository operations
// use the main connection when no transaction is active.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryWithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := suite.createTestShipment("order-300")

	err := uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	var count int64
	err = suite.db.Model(&shipmentrepo.ShipmentDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestShipment(orderID string) *shipment.Shipment {
	address, err := kernel.NewAddress("Main st. 1", "Boston", "02101")
	suite.Require().NoError(err)

	s, err := shipment.NewShipment(
		orderID,
		address,
		"Modern Shipping",
		"receiver@mail.com",
		[]shipment.Item{shipment.NewItem("Laptop Stand", 2)},
	)
	suite.Require().NoError(err)

	return s
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
