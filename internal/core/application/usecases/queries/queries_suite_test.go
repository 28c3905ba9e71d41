package queries_test

import (
	"context"
	"time"

	"expertise/internal/adapters/out/postgres/analysisrepo"
	"expertise/internal/adapters/out/postgres/commentrepo"
	"expertise/internal/adapters/out/postgres/documentrepo"
	"expertise/internal/adapters/out/postgres/orderrepo"
	"expertise/internal/core/domain/model/actor"
	"expertise/internal/core/domain/model/analysis"
	"expertise/internal/core/domain/model/comment"
	"expertise/internal/core/domain/model/document"
	"expertise/internal/core/domain/model/kernel"
	"expertise/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// QueryHandlerTestSuite is the shared base for query handler integration
// tests: one PostgreSQL container per suite, the full schema migrated, and
// seeding helpers writing rows the way the write side would.
type QueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *QueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&analysisrepo.AnalysisDTO{},
		&documentrepo.DocumentDTO{},
		&commentrepo.CommentDTO{},
	))
}

func (suite *QueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, analyses, documents, order_comments",
	).Error)
}

func (suite *QueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlerTestSuite) newActor(role actor.Role) actor.Actor {
	a, err := actor.NewActor(kernel.NewUUID(), role)
	suite.Require().NoError(err)
	return a
}

// seedOrder inserts an order owned by clientID in the given status with a
// spread-out creation time so listing order is deterministic.
func (suite *QueryHandlerTestSuite) seedOrder(
	clientID kernel.UUID,
	title string,
	status order.Status,
	createdAt time.Time,
) *order.Order {
	o, err := order.RestoreOrder(
		kernel.NewUUID(), clientID, nil, title, "seeded order", status, createdAt, createdAt,
	)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.db.Create(&orderrepo.OrderDTO{
		ID:          o.ID().Bytes(),
		ClientID:    o.ClientID().Bytes(),
		Title:       o.Title(),
		Description: o.Description(),
		Status:      int(o.Status()),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}).Error)

	return o
}

func (suite *QueryHandlerTestSuite) seedAnalysis(orderID kernel.UUID, preview, full string) *analysis.Analysis {
	a, err := analysis.NewAnalysis(kernel.NewUUID(), orderID, preview, full)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.db.Create(&analysisrepo.AnalysisDTO{
		ID:             a.ID().Bytes(),
		OrderID:        a.OrderID().Bytes(),
		PreviewContent: a.PreviewContent(),
		FullContent:    a.FullContent(),
		CreatedAt:      a.CreatedAt(),
		UpdatedAt:      a.UpdatedAt(),
	}).Error)

	return a
}

func (suite *QueryHandlerTestSuite) seedDocument(
	orderID kernel.UUID,
	fileName string,
	storageKey string,
	createdAt time.Time,
) *document.Document {
	d, err := document.RestoreDocument(
		kernel.NewUUID(), orderID, fileName, storageKey, kernel.NewUUID(), createdAt,
	)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.db.Create(&documentrepo.DocumentDTO{
		ID:         d.ID().Bytes(),
		OrderID:    d.OrderID().Bytes(),
		FileName:   d.FileName(),
		StorageKey: d.StorageKey(),
		UploadedBy: d.UploadedBy().Bytes(),
		CreatedAt:  d.CreatedAt(),
	}).Error)

	return d
}

func (suite *QueryHandlerTestSuite) seedComment(
	orderID kernel.UUID,
	author actor.Actor,
	content string,
	createdAt time.Time,
) *comment.Comment {
	c, err := comment.RestoreComment(
		kernel.NewUUID(), orderID, author.ID(), author.Role(), content, false, createdAt,
	)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.db.Create(&commentrepo.CommentDTO{
		ID:         c.ID().Bytes(),
		OrderID:    c.OrderID().Bytes(),
		AuthorID:   c.AuthorID().Bytes(),
		AuthorRole: int(c.AuthorRole()),
		Content:    c.Content(),
		IsPrivate:  c.IsPrivate(),
		CreatedAt:  c.CreatedAt(),
	}).Error)

	return c
}

// actorFor returns an actor with the given role and identity, for seeding
// orders owned by a specific client.
func (suite *QueryHandlerTestSuite) actorFor(id kernel.UUID, role actor.Role) actor.Actor {
	a, err := actor.NewActor(id, role)
	suite.Require().NoError(err)
	return a
}
