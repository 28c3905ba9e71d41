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

type GetAllOrdersQueryHandlerTestSuite struct {
	QueryHandlerTestSuite
	handler queries.GetAllOrdersQueryHandler
}

func (suite *GetAllOrdersQueryHandlerTestSuite) SetupSuite() {
	suite.QueryHandlerTestSuite.SetupSuite()
	suite.handler = queries.NewGetAllOrdersQueryHandler(suite.db)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_ReturnsAllClientsOrdersNewestFirst() {
	base := time.Now().UTC().Add(-time.Hour)

	first := suite.seedOrder(kernel.NewUUID(), "First", order.New, base)
	second := suite.seedOrder(kernel.NewUUID(), "Second", order.AwaitingPayment, base.Add(10*time.Minute))
	third := suite.seedOrder(kernel.NewUUID(), "Third", order.Completed, base.Add(20*time.Minute))

	query, err := queries.NewGetAllOrdersQuery(suite.newActor(actor.Operator))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.True(result[0].ID.IsEqual(third.ID()))
	suite.True(result[1].ID.IsEqual(second.ID()))
	suite.True(result[2].ID.IsEqual(first.ID()))
	suite.Equal(order.AwaitingPayment, result[1].Status)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_ClientForbidden() {
	query, err := queries.NewGetAllOrdersQuery(suite.newActor(actor.Client))
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrOperationForbidden)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetAllOrdersQuery{})

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, queries.ErrGetAllOrdersQueryIsNotConstructed)
}

func TestGetAllOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllOrdersQueryHandlerTestSuite))
}
