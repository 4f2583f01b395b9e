package server

import (
	"context"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"

	"droscher.com/CoffeeLedger/pkg/ledger"
	"droscher.com/CoffeeLedger/pkg/server/grpc"
	api "droscher.com/CoffeeLedger/pkg/server/grpc/api/v1"
)

type ConsumptionServer struct {
	ledger  *ledger.Ledger
	metrics *Metrics
	logger  *zap.Logger
}

// NewConsumptionServer returns the consumption service. metrics may be nil.
func NewConsumptionServer(ledger *ledger.Ledger, metrics *Metrics, logger *zap.Logger) *ConsumptionServer {
	return &ConsumptionServer{ledger: ledger, metrics: metrics, logger: logger}
}

func (c *ConsumptionServer) RecordConsumption(
	ctx context.Context,
	request *connect.Request[api.RecordConsumptionRequest],
) (*connect.Response[api.RecordConsumptionResponse], error) {
	event, err := c.ledger.RecordConsumption(ctx, grpc.ConsumptionInputFromRecord(request.Msg))
	if err != nil {
		return nil, toConnectError(c.logger, "error recording consumption", err)
	}

	c.metrics.CupsRecorded(event.Cups)

	return connect.NewResponse(&api.RecordConsumptionResponse{Event: grpc.ConsumptionEventFromModel(*event)}), nil
}

func (c *ConsumptionServer) UpdateConsumption(
	ctx context.Context,
	request *connect.Request[api.UpdateConsumptionRequest],
) (*connect.Response[api.UpdateConsumptionResponse], error) {
	event, err := c.ledger.UpdateConsumption(ctx, uint(request.Msg.ID), grpc.ConsumptionInputFromUpdate(request.Msg))
	if err != nil {
		return nil, toConnectError(c.logger, "error updating consumption", err)
	}

	return connect.NewResponse(&api.UpdateConsumptionResponse{Event: grpc.ConsumptionEventFromModel(*event)}), nil
}

func (c *ConsumptionServer) DeleteConsumption(
	ctx context.Context,
	request *connect.Request[api.DeleteConsumptionRequest],
) (*connect.Response[api.DeleteResponse], error) {
	if err := c.ledger.DeleteConsumption(ctx, uint(request.Msg.ID)); err != nil {
		return nil, toConnectError(c.logger, "error deleting consumption", err)
	}

	return connect.NewResponse(&api.DeleteResponse{Success: true}), nil
}

func (c *ConsumptionServer) ListConsumption(
	ctx context.Context,
	request *connect.Request[api.ListConsumptionRequest],
) (*connect.Response[api.ListConsumptionResponse], error) {
	var limit *int

	if request.Msg.Limit != nil {
		requested := int(*request.Msg.Limit)
		limit = &requested
	}

	listing, err := c.ledger.ListConsumption(ctx, limit)
	if err != nil {
		return nil, toConnectError(c.logger, "error listing consumption", err)
	}

	return connect.NewResponse(&api.ListConsumptionResponse{Events: grpc.ConsumptionEntriesFromModel(listing)}), nil
}
