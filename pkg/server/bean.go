package server

import (
	"context"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"

	"droscher.com/CoffeeLedger/configs"
	"droscher.com/CoffeeLedger/pkg/integrations"
	"droscher.com/CoffeeLedger/pkg/ledger"
	"droscher.com/CoffeeLedger/pkg/server/grpc"
	api "droscher.com/CoffeeLedger/pkg/server/grpc/api/v1"
)

type BeanServer struct {
	ledger       *ledger.Ledger
	integrations configs.Integrations
	logger       *zap.Logger
}

func NewBeanServer(ledger *ledger.Ledger, integrations configs.Integrations, logger *zap.Logger) *BeanServer {
	return &BeanServer{ledger: ledger, integrations: integrations, logger: logger}
}

// FindBean asks every configured catalogue for beans matching the query.
// A failing catalogue is logged and skipped. The search stops when the
// caller goes away.
func (b *BeanServer) FindBean(ctx context.Context, request *connect.Request[api.FindBeanRequest]) (*connect.Response[api.FindBeanResponse], error) {
	beans := make([]*api.Bean, 0)

	for _, name := range b.integrations.Bean {
		beanIntegration, err := integrations.GetIntegration(name, b.integrations, b.logger)
		if err != nil {
			b.logger.Error("bean integration unavailable", zap.String("integration", name), zap.Error(err))

			continue
		}

		foundBeans, err := beanIntegration.FindBean(ctx, request.Msg.Query)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, connect.NewError(contextCode(ctxErr), ctxErr)
		}

		if err != nil {
			b.logger.Error("failed bean search", zap.String("integration", name), zap.Error(err))

			continue
		}

		beans = append(beans, grpc.BeansFromModel(foundBeans)...)
	}

	return connect.NewResponse(&api.FindBeanResponse{Beans: beans}), nil
}

func (b *BeanServer) AddBean(ctx context.Context, request *connect.Request[api.AddBeanRequest]) (*connect.Response[api.AddBeanResponse], error) {
	bean, err := b.ledger.AddBean(ctx, grpc.BeanInputFromAdd(request.Msg))
	if err != nil {
		return nil, toConnectError(b.logger, "error adding bean", err)
	}

	return connect.NewResponse(&api.AddBeanResponse{Bean: grpc.BeanFromModel(*bean)}), nil
}

func (b *BeanServer) UpdateBean(ctx context.Context, request *connect.Request[api.UpdateBeanRequest]) (*connect.Response[api.UpdateBeanResponse], error) {
	bean, err := b.ledger.UpdateBean(ctx, uint(request.Msg.ID), grpc.BeanInputFromUpdate(request.Msg))
	if err != nil {
		return nil, toConnectError(b.logger, "error updating bean", err)
	}

	return connect.NewResponse(&api.UpdateBeanResponse{Bean: grpc.BeanFromModel(*bean)}), nil
}

func (b *BeanServer) DeleteBean(ctx context.Context, request *connect.Request[api.DeleteBeanRequest]) (*connect.Response[api.DeleteResponse], error) {
	if err := b.ledger.DeleteBean(ctx, uint(request.Msg.ID)); err != nil {
		return nil, toConnectError(b.logger, "error deleting bean", err)
	}

	return connect.NewResponse(&api.DeleteResponse{Success: true}), nil
}

func (b *BeanServer) GetBeans(ctx context.Context, _ *connect.Request[api.GetBeansRequest]) (*connect.Response[api.GetBeansResponse], error) {
	beans, err := b.ledger.ListBeans(ctx)
	if err != nil {
		return nil, toConnectError(b.logger, "error getting beans", err)
	}

	return connect.NewResponse(&api.GetBeansResponse{Beans: grpc.StoredBeansFromModel(beans)}), nil
}
