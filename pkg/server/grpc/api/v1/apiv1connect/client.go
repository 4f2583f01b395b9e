package apiv1connect

import (
	"context"
	"strings"

	"github.com/bufbuild/connect-go"

	v1 "droscher.com/CoffeeLedger/pkg/server/grpc/api/v1"
)

type PersonServiceClient struct {
	addPerson    *connect.Client[v1.AddPersonRequest, v1.AddPersonResponse]
	updatePerson *connect.Client[v1.UpdatePersonRequest, v1.UpdatePersonResponse]
	deletePerson *connect.Client[v1.DeletePersonRequest, v1.DeleteResponse]
	getPeople    *connect.Client[v1.GetPeopleRequest, v1.GetPeopleResponse]
}

func NewPersonServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *PersonServiceClient {
	baseURL, opts = strings.TrimRight(baseURL, "/"), withClientJSON(opts)

	return &PersonServiceClient{
		addPerson:    connect.NewClient[v1.AddPersonRequest, v1.AddPersonResponse](httpClient, baseURL+PersonServiceAddPersonProcedure, opts...),
		updatePerson: connect.NewClient[v1.UpdatePersonRequest, v1.UpdatePersonResponse](httpClient, baseURL+PersonServiceUpdatePersonProcedure, opts...),
		deletePerson: connect.NewClient[v1.DeletePersonRequest, v1.DeleteResponse](httpClient, baseURL+PersonServiceDeletePersonProcedure, opts...),
		getPeople:    connect.NewClient[v1.GetPeopleRequest, v1.GetPeopleResponse](httpClient, baseURL+PersonServiceGetPeopleProcedure, opts...),
	}
}

func (c *PersonServiceClient) AddPerson(ctx context.Context, req *connect.Request[v1.AddPersonRequest]) (*connect.Response[v1.AddPersonResponse], error) {
	return c.addPerson.CallUnary(ctx, req)
}

func (c *PersonServiceClient) UpdatePerson(ctx context.Context, req *connect.Request[v1.UpdatePersonRequest]) (*connect.Response[v1.UpdatePersonResponse], error) {
	return c.updatePerson.CallUnary(ctx, req)
}

func (c *PersonServiceClient) DeletePerson(ctx context.Context, req *connect.Request[v1.DeletePersonRequest]) (*connect.Response[v1.DeleteResponse], error) {
	return c.deletePerson.CallUnary(ctx, req)
}

func (c *PersonServiceClient) GetPeople(ctx context.Context, req *connect.Request[v1.GetPeopleRequest]) (*connect.Response[v1.GetPeopleResponse], error) {
	return c.getPeople.CallUnary(ctx, req)
}

type ConsumptionServiceClient struct {
	recordConsumption *connect.Client[v1.RecordConsumptionRequest, v1.RecordConsumptionResponse]
	updateConsumption *connect.Client[v1.UpdateConsumptionRequest, v1.UpdateConsumptionResponse]
	deleteConsumption *connect.Client[v1.DeleteConsumptionRequest, v1.DeleteResponse]
	listConsumption   *connect.Client[v1.ListConsumptionRequest, v1.ListConsumptionResponse]
}

func NewConsumptionServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *ConsumptionServiceClient {
	baseURL, opts = strings.TrimRight(baseURL, "/"), withClientJSON(opts)

	return &ConsumptionServiceClient{
		recordConsumption: connect.NewClient[v1.RecordConsumptionRequest, v1.RecordConsumptionResponse](
			httpClient, baseURL+ConsumptionServiceRecordConsumptionProcedure, opts...),
		updateConsumption: connect.NewClient[v1.UpdateConsumptionRequest, v1.UpdateConsumptionResponse](
			httpClient, baseURL+ConsumptionServiceUpdateConsumptionProcedure, opts...),
		deleteConsumption: connect.NewClient[v1.DeleteConsumptionRequest, v1.DeleteResponse](
			httpClient, baseURL+ConsumptionServiceDeleteConsumptionProcedure, opts...),
		listConsumption: connect.NewClient[v1.ListConsumptionRequest, v1.ListConsumptionResponse](
			httpClient, baseURL+ConsumptionServiceListConsumptionProcedure, opts...),
	}
}

func (c *ConsumptionServiceClient) RecordConsumption(
	ctx context.Context, req *connect.Request[v1.RecordConsumptionRequest],
) (*connect.Response[v1.RecordConsumptionResponse], error) {
	return c.recordConsumption.CallUnary(ctx, req)
}

func (c *ConsumptionServiceClient) UpdateConsumption(
	ctx context.Context, req *connect.Request[v1.UpdateConsumptionRequest],
) (*connect.Response[v1.UpdateConsumptionResponse], error) {
	return c.updateConsumption.CallUnary(ctx, req)
}

func (c *ConsumptionServiceClient) DeleteConsumption(
	ctx context.Context, req *connect.Request[v1.DeleteConsumptionRequest],
) (*connect.Response[v1.DeleteResponse], error) {
	return c.deleteConsumption.CallUnary(ctx, req)
}

func (c *ConsumptionServiceClient) ListConsumption(
	ctx context.Context, req *connect.Request[v1.ListConsumptionRequest],
) (*connect.Response[v1.ListConsumptionResponse], error) {
	return c.listConsumption.CallUnary(ctx, req)
}

type StatsServiceClient struct {
	getStats *connect.Client[v1.GetStatsRequest, v1.GetStatsResponse]
}

func NewStatsServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *StatsServiceClient {
	baseURL, opts = strings.TrimRight(baseURL, "/"), withClientJSON(opts)

	return &StatsServiceClient{
		getStats: connect.NewClient[v1.GetStatsRequest, v1.GetStatsResponse](httpClient, baseURL+StatsServiceGetStatsProcedure, opts...),
	}
}

func (c *StatsServiceClient) GetStats(ctx context.Context, req *connect.Request[v1.GetStatsRequest]) (*connect.Response[v1.GetStatsResponse], error) {
	return c.getStats.CallUnary(ctx, req)
}

func withClientJSON(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
}
