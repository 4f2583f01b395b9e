package server

import (
	"context"
	"time"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"

	"droscher.com/CoffeeLedger/pkg/server/grpc"
	api "droscher.com/CoffeeLedger/pkg/server/grpc/api/v1"
	"droscher.com/CoffeeLedger/pkg/stats"
)

type StatsServer struct {
	engine      *stats.Engine
	defaultDays int
	now         func() time.Time
	logger      *zap.Logger
}

func NewStatsServer(engine *stats.Engine, defaultDays int, logger *zap.Logger) *StatsServer {
	if defaultDays < 1 {
		defaultDays = stats.DefaultDays
	}

	return &StatsServer{engine: engine, defaultDays: defaultDays, now: time.Now, logger: logger}
}

// GetStats returns the today, week and month totals, or the daily series
// when the request asks for it.
func (s *StatsServer) GetStats(ctx context.Context, request *connect.Request[api.GetStatsRequest]) (*connect.Response[api.GetStatsResponse], error) {
	now := s.now()

	if request.Msg.Daily {
		days := s.defaultDays
		if request.Msg.Days != nil {
			days = int(*request.Msg.Days)
		}

		series, err := s.engine.Daily(ctx, now, days)
		if err != nil {
			return nil, toConnectError(s.logger, "error getting daily stats", err)
		}

		return connect.NewResponse(&api.GetStatsResponse{Daily: grpc.DailyFromModel(series)}), nil
	}

	totals, err := s.engine.Totals(ctx, now)
	if err != nil {
		return nil, toConnectError(s.logger, "error getting stats totals", err)
	}

	return connect.NewResponse(&api.GetStatsResponse{
		Today: &totals.Today,
		Week:  &totals.Week,
		Month: &totals.Month,
	}), nil
}
