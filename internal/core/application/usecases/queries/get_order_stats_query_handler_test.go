package queries_test

import (
	"context"
	"testing"
	"time"

	"expertise/internal/core/application/usecases/queries"
	"expertise/internal/core/domain/model/actor"
	"expertise/internal/core/domain/model/kernel"
	"expertise/internal/core/domain/model/order"
	"expertise/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type GetOrderStatsQueryHandlerTestSuite struct {
	QueryHandlerTestSuite
	handler queries.GetOrderStatsQueryHandler
}

func (suite *GetOrderStatsQueryHandlerTestSuite) SetupSuite() {
	suite.QueryHandlerTestSuite.SetupSuite()
	suite.handler = queries.NewGetOrderStatsQueryHandler(suite.db)
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TestHandle_EmptyDatabase_AllStatusesZero() {
	query, err := queries.NewGetOrderStatsQuery(suite.newActor(actor.Operator))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Counts, len(order.AllStatuses()))
	suite.Equal(0, result.Total)
	for _, count := range result.Counts {
		suite.Equal(0, count.Count)
	}
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TestHandle_CountsPerStatusInLifecycleOrder() {
	now := time.Now().UTC()
	suite.seedOrder(kernel.NewUUID(), "a", order.New, now)
	suite.seedOrder(kernel.NewUUID(), "b", order.New, now)
	suite.seedOrder(kernel.NewUUID(), "c", order.AwaitingPayment, now)
	suite.seedOrder(kernel.NewUUID(), "d", order.Completed, now)

	query, err := queries.NewGetOrderStatsQuery(suite.newActor(actor.Operator))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(4, result.Total)
	suite.Equal(order.AllStatuses(), statusesOf(result.Counts))

	counts := make(map[order.Status]int)
	for _, count := range result.Counts {
		counts[count.Status] = count.Count
	}
	suite.Equal(2, counts[order.New])
	suite.Equal(0, counts[order.InProgress])
	suite.Equal(0, counts[order.AwaitingClient])
	suite.Equal(1, counts[order.AwaitingPayment])
	suite.Equal(1, counts[order.Completed])
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TestHandle_ClientForbidden() {
	query, err := queries.NewGetOrderStatsQuery(suite.newActor(actor.Client))
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrOperationForbidden)
}

func statusesOf(counts []queries.StatusCount) []order.Status {
	statuses := make([]order.Status, 0, len(counts))
	for _, count := range counts {
		statuses = append(statuses, count.Status)
	}
	return statuses
}

func TestGetOrderStatsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderStatsQueryHandlerTestSuite))
}
