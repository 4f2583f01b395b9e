package server_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/bufbuild/connect-go"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/CoffeeLedger/mocks"
	"droscher.com/CoffeeLedger/pkg/model"
	"droscher.com/CoffeeLedger/pkg/server"
	apiv1 "droscher.com/CoffeeLedger/pkg/server/grpc/api/v1"
	"droscher.com/CoffeeLedger/pkg/stats"
)

type StatsTestSuite struct {
	suite.Suite
	repo         *mocks.StatsRepository
	service      *server.StatsServer
	observedLogs *observer.ObservedLogs
}

func TestStatsTestSuite(t *testing.T) {
	suite.Run(t, new(StatsTestSuite))
}

func (suite *StatsTestSuite) SetupTest() {
	suite.repo = mocks.NewStatsRepository(suite.T())

	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs

	suite.service = server.NewStatsServer(stats.NewEngine(suite.repo, time.UTC), 0, zap.New(observedZapCore))
}

func (suite *StatsTestSuite) TestGetStats_Totals() {
	ctx := context.Background()

	suite.repo.On("SumCupsSince", ctx, mock.AnythingOfType("time.Time")).Return(int64(2), nil).Once()
	suite.repo.On("SumCupsSince", ctx, mock.AnythingOfType("time.Time")).Return(int64(9), nil).Once()
	suite.repo.On("SumCupsSince", ctx, mock.AnythingOfType("time.Time")).Return(int64(31), nil).Once()

	response, err := suite.service.GetStats(ctx, connect.NewRequest(&apiv1.GetStatsRequest{}))

	suite.Require().NoError(err)
	suite.Equal(&apiv1.GetStatsResponse{Today: pointy.Int64(2), Week: pointy.Int64(9), Month: pointy.Int64(31)}, response.Msg)
}

func (suite *StatsTestSuite) TestGetStats_DailyDefaultsToThirtyDays() {
	ctx := context.Background()
	today := time.Now().UTC().Format(stats.DateLayout)

	suite.repo.On("DailyCupsSince", ctx, mock.AnythingOfType("time.Time"), time.UTC).
		Return([]model.DailyCups{{Date: today, Cups: 3}}, nil)

	response, err := suite.service.GetStats(ctx, connect.NewRequest(&apiv1.GetStatsRequest{Daily: true}))

	suite.Require().NoError(err)
	suite.Nil(response.Msg.Today)
	suite.Require().Len(response.Msg.Daily, stats.DefaultDays)
	suite.Equal(apiv1.DailyCups{Date: today, Cups: 3}, response.Msg.Daily[stats.DefaultDays-1])
}

func (suite *StatsTestSuite) TestGetStats_DailyWithDays() {
	ctx := context.Background()

	suite.repo.On("DailyCupsSince", ctx, mock.AnythingOfType("time.Time"), time.UTC).Return(nil, nil)

	response, err := suite.service.GetStats(ctx, connect.NewRequest(&apiv1.GetStatsRequest{Daily: true, Days: pointy.Int32(3)}))

	suite.Require().NoError(err)
	suite.Len(response.Msg.Daily, 3)

	for _, day := range response.Msg.Daily {
		suite.Zero(day.Cups)
	}
}

func (suite *StatsTestSuite) TestGetStats_RejectsEmptyWindow() {
	response, err := suite.service.GetStats(context.Background(), connect.NewRequest(&apiv1.GetStatsRequest{Daily: true, Days: pointy.Int32(0)}))

	suite.Nil(response)
	suite.Equal(connect.CodeInvalidArgument, connect.CodeOf(err))
}

func (suite *StatsTestSuite) TestGetStats_RejectsOversizedWindow() {
	response, err := suite.service.GetStats(context.Background(), connect.NewRequest(&apiv1.GetStatsRequest{Daily: true, Days: pointy.Int32(math.MaxInt32)}))

	suite.Nil(response)
	suite.Equal(connect.CodeInvalidArgument, connect.CodeOf(err))
	suite.Zero(suite.observedLogs.Len())
}

func (suite *StatsTestSuite) TestGetStats_Internal() {
	ctx := context.Background()

	suite.repo.On("SumCupsSince", ctx, mock.AnythingOfType("time.Time")).Return(int64(0), errors.New("timeout")).Once()

	response, err := suite.service.GetStats(ctx, connect.NewRequest(&apiv1.GetStatsRequest{}))

	suite.Nil(response)
	suite.Equal(connect.CodeInternal, connect.CodeOf(err))
	suite.Equal(1, suite.observedLogs.FilterMessage("error getting stats totals").Len())
}
