package postgres_test

import (
	"context"
	"testing"
	"time"

	pgadapter "butler/internal/adapters/out/postgres"
	"butler/internal/adapters/out/postgres/deliverylogrepo"
	"butler/internal/core/domain/model/kernel"
	"butler/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics of the GORM
// unit of work against a real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *pgadapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&deliverylogrepo.DeliveryDTO{}))
	suite.factory = pgadapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newRecord(tableID string) order.DeliveryRecord {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return order.DeliveryRecord{
		OrderID:    kernel.NewUUID(),
		TableID:    tableID,
		Status:     order.Delivered,
		CreatedAt:  now.Add(-time.Minute),
		FinishedAt: now,
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) deliveryCount() int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(&deliverylogrepo.DeliveryDTO{}).Count(&count).Error)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsRecords() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	err := uow.DeliveryLogRepository().Add(ctx, []order.DeliveryRecord{suite.newRecord("table1")})
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.deliveryCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsRecords() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	err := uow.DeliveryLogRepository().Add(ctx, []order.DeliveryRecord{suite.newRecord("table1")})
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.deliveryCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBeginFails() {
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_IsIdempotent() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
