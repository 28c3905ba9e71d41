package postgres_test

import (
	"context"
	"testing"
	"time"

	"expertise/internal/adapters/out/postgres"
	"expertise/internal/adapters/out/postgres/analysisrepo"
	"expertise/internal/adapters/out/postgres/commentrepo"
	"expertise/internal/adapters/out/postgres/documentrepo"
	"expertise/internal/adapters/out/postgres/orderrepo"
	"expertise/internal/core/domain/model/analysis"
	"expertise/internal/core/domain/model/kernel"
	"expertise/internal/core/domain/model/order"
	"expertise/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics across the
// repositories: commits persist, rollbacks discard, and a multi-repository
// write is atomic.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&analysisrepo.AnalysisDTO{},
		&documentrepo.DocumentDTO{},
		&commentrepo.CommentDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, analyses, documents, order_comments",
	).Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Contract review", "")
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) orderCount() int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.createTestOrder()))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.orderCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.createTestOrder()))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.orderCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_ReturnsError() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMultiRepositoryWrite_IsAtomic() {
	ctx := context.Background()
	o := suite.createTestOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	a, err := analysis.NewAnalysis(kernel.NewUUID(), o.ID(), "Preview text", "Full findings")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.AnalysisRepository().Add(ctx, a))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.orderCount())

	var analysisCount int64
	suite.Require().NoError(suite.db.Model(&analysisrepo.AnalysisDTO{}).Count(&analysisCount).Error)
	suite.Equal(int64(0), analysisCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUncommittedWrite_InvisibleToOtherConnections() {
	ctx := context.Background()
	o := suite.createTestOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	outside := suite.factory.Create()
	_, err := outside.OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().NoError(uow.Commit(ctx))

	restored, err := outside.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(o.ID()))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
