package server

import (
	"context"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"

	"droscher.com/CoffeeLedger/pkg/ledger"
	"droscher.com/CoffeeLedger/pkg/server/grpc"
	api "droscher.com/CoffeeLedger/pkg/server/grpc/api/v1"
)

type PersonServer struct {
	ledger *ledger.Ledger
	logger *zap.Logger
}

func NewPersonServer(ledger *ledger.Ledger, logger *zap.Logger) *PersonServer {
	return &PersonServer{ledger: ledger, logger: logger}
}

func (p *PersonServer) AddPerson(ctx context.Context, request *connect.Request[api.AddPersonRequest]) (*connect.Response[api.AddPersonResponse], error) {
	person, err := p.ledger.AddPerson(ctx, request.Msg.Name)
	if err != nil {
		return nil, toConnectError(p.logger, "error adding person", err)
	}

	return connect.NewResponse(&api.AddPersonResponse{Person: grpc.PersonFromModel(*person)}), nil
}

func (p *PersonServer) UpdatePerson(ctx context.Context, request *connect.Request[api.UpdatePersonRequest]) (*connect.Response[api.UpdatePersonResponse], error) {
	person, err := p.ledger.RenamePerson(ctx, uint(request.Msg.ID), request.Msg.Name)
	if err != nil {
		return nil, toConnectError(p.logger, "error updating person", err)
	}

	return connect.NewResponse(&api.UpdatePersonResponse{Person: grpc.PersonFromModel(*person)}), nil
}

func (p *PersonServer) DeletePerson(ctx context.Context, request *connect.Request[api.DeletePersonRequest]) (*connect.Response[api.DeleteResponse], error) {
	if err := p.ledger.DeletePerson(ctx, uint(request.Msg.ID)); err != nil {
		return nil, toConnectError(p.logger, "error deleting person", err)
	}

	return connect.NewResponse(&api.DeleteResponse{Success: true}), nil
}

func (p *PersonServer) GetPeople(ctx context.Context, _ *connect.Request[api.GetPeopleRequest]) (*connect.Response[api.GetPeopleResponse], error) {
	people, err := p.ledger.ListPeople(ctx)
	if err != nil {
		return nil, toConnectError(p.logger, "error getting people", err)
	}

	return connect.NewResponse(&api.GetPeopleResponse{People: grpc.PeopleFromModel(people)}), nil
}
