// Package apiv1connect binds the coffeeledger.v1 services to connect handlers
// and clients.
package apiv1connect

import (
	"context"
	"net/http"

	"github.com/bufbuild/connect-go"

	v1 "droscher.com/CoffeeLedger/pkg/server/grpc/api/v1"
)

const (
	PersonServiceName      = "coffeeledger.v1.PersonService"
	BeanServiceName        = "coffeeledger.v1.BeanService"
	ConsumptionServiceName = "coffeeledger.v1.ConsumptionService"
	StatsServiceName       = "coffeeledger.v1.StatsService"
)

const (
	PersonServiceAddPersonProcedure    = "/coffeeledger.v1.PersonService/AddPerson"
	PersonServiceUpdatePersonProcedure = "/coffeeledger.v1.PersonService/UpdatePerson"
	PersonServiceDeletePersonProcedure = "/coffeeledger.v1.PersonService/DeletePerson"
	PersonServiceGetPeopleProcedure    = "/coffeeledger.v1.PersonService/GetPeople"

	BeanServiceAddBeanProcedure    = "/coffeeledger.v1.BeanService/AddBean"
	BeanServiceUpdateBeanProcedure = "/coffeeledger.v1.BeanService/UpdateBean"
	BeanServiceDeleteBeanProcedure = "/coffeeledger.v1.BeanService/DeleteBean"
	BeanServiceGetBeansProcedure   = "/coffeeledger.v1.BeanService/GetBeans"
	BeanServiceFindBeanProcedure   = "/coffeeledger.v1.BeanService/FindBean"

	ConsumptionServiceRecordConsumptionProcedure = "/coffeeledger.v1.ConsumptionService/RecordConsumption"
	ConsumptionServiceUpdateConsumptionProcedure = "/coffeeledger.v1.ConsumptionService/UpdateConsumption"
	ConsumptionServiceDeleteConsumptionProcedure = "/coffeeledger.v1.ConsumptionService/DeleteConsumption"
	ConsumptionServiceListConsumptionProcedure   = "/coffeeledger.v1.ConsumptionService/ListConsumption"

	StatsServiceGetStatsProcedure = "/coffeeledger.v1.StatsService/GetStats"
)

// ServiceNames lists every coffeeledger.v1 service, for health checks.
var ServiceNames = []string{PersonServiceName, BeanServiceName, ConsumptionServiceName, StatsServiceName}

type PersonServiceHandler interface {
	AddPerson(context.Context, *connect.Request[v1.AddPersonRequest]) (*connect.Response[v1.AddPersonResponse], error)
	UpdatePerson(context.Context, *connect.Request[v1.UpdatePersonRequest]) (*connect.Response[v1.UpdatePersonResponse], error)
	DeletePerson(context.Context, *connect.Request[v1.DeletePersonRequest]) (*connect.Response[v1.DeleteResponse], error)
	GetPeople(context.Context, *connect.Request[v1.GetPeopleRequest]) (*connect.Response[v1.GetPeopleResponse], error)
}

type BeanServiceHandler interface {
	AddBean(context.Context, *connect.Request[v1.AddBeanRequest]) (*connect.Response[v1.AddBeanResponse], error)
	UpdateBean(context.Context, *connect.Request[v1.UpdateBeanRequest]) (*connect.Response[v1.UpdateBeanResponse], error)
	DeleteBean(context.Context, *connect.Request[v1.DeleteBeanRequest]) (*connect.Response[v1.DeleteResponse], error)
	GetBeans(context.Context, *connect.Request[v1.GetBeansRequest]) (*connect.Response[v1.GetBeansResponse], error)
	FindBean(context.Context, *connect.Request[v1.FindBeanRequest]) (*connect.Response[v1.FindBeanResponse], error)
}

type ConsumptionServiceHandler interface {
	RecordConsumption(context.Context, *connect.Request[v1.RecordConsumptionRequest]) (*connect.Response[v1.RecordConsumptionResponse], error)
	UpdateConsumption(context.Context, *connect.Request[v1.UpdateConsumptionRequest]) (*connect.Response[v1.UpdateConsumptionResponse], error)
	DeleteConsumption(context.Context, *connect.Request[v1.DeleteConsumptionRequest]) (*connect.Response[v1.DeleteResponse], error)
	ListConsumption(context.Context, *connect.Request[v1.ListConsumptionRequest]) (*connect.Response[v1.ListConsumptionResponse], error)
}

type StatsServiceHandler interface {
	GetStats(context.Context, *connect.Request[v1.GetStatsRequest]) (*connect.Response[v1.GetStatsResponse], error)
}

// NewPersonServiceHandler returns the path the service is mounted on and its
// handler. The JSON codec is always installed.
func NewPersonServiceHandler(svc PersonServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withJSON(opts)
	mux := http.NewServeMux()
	mux.Handle(PersonServiceAddPersonProcedure, connect.NewUnaryHandler(PersonServiceAddPersonProcedure, svc.AddPerson, opts...))
	mux.Handle(PersonServiceUpdatePersonProcedure, connect.NewUnaryHandler(PersonServiceUpdatePersonProcedure, svc.UpdatePerson, opts...))
	mux.Handle(PersonServiceDeletePersonProcedure, connect.NewUnaryHandler(PersonServiceDeletePersonProcedure, svc.DeletePerson, opts...))
	mux.Handle(PersonServiceGetPeopleProcedure, connect.NewUnaryHandler(PersonServiceGetPeopleProcedure, svc.GetPeople, opts...))

	return servicePath(PersonServiceName), mux
}

func NewBeanServiceHandler(svc BeanServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withJSON(opts)
	mux := http.NewServeMux()
	mux.Handle(BeanServiceAddBeanProcedure, connect.NewUnaryHandler(BeanServiceAddBeanProcedure, svc.AddBean, opts...))
	mux.Handle(BeanServiceUpdateBeanProcedure, connect.NewUnaryHandler(BeanServiceUpdateBeanProcedure, svc.UpdateBean, opts...))
	mux.Handle(BeanServiceDeleteBeanProcedure, connect.NewUnaryHandler(BeanServiceDeleteBeanProcedure, svc.DeleteBean, opts...))
	mux.Handle(BeanServiceGetBeansProcedure, connect.NewUnaryHandler(BeanServiceGetBeansProcedure, svc.GetBeans, opts...))
	mux.Handle(BeanServiceFindBeanProcedure, connect.NewUnaryHandler(BeanServiceFindBeanProcedure, svc.FindBean, opts...))

	return servicePath(BeanServiceName), mux
}

func NewConsumptionServiceHandler(svc ConsumptionServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withJSON(opts)
	mux := http.NewServeMux()
	mux.Handle(ConsumptionServiceRecordConsumptionProcedure,
		connect.NewUnaryHandler(ConsumptionServiceRecordConsumptionProcedure, svc.RecordConsumption, opts...))
	mux.Handle(ConsumptionServiceUpdateConsumptionProcedure,
		connect.NewUnaryHandler(ConsumptionServiceUpdateConsumptionProcedure, svc.UpdateConsumption, opts...))
	mux.Handle(ConsumptionServiceDeleteConsumptionProcedure,
		connect.NewUnaryHandler(ConsumptionServiceDeleteConsumptionProcedure, svc.DeleteConsumption, opts...))
	mux.Handle(ConsumptionServiceListConsumptionProcedure,
		connect.NewUnaryHandler(ConsumptionServiceListConsumptionProcedure, svc.ListConsumption, opts...))

	return servicePath(ConsumptionServiceName), mux
}

func NewStatsServiceHandler(svc StatsServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withJSON(opts)
	mux := http.NewServeMux()
	mux.Handle(StatsServiceGetStatsProcedure, connect.NewUnaryHandler(StatsServiceGetStatsProcedure, svc.GetStats, opts...))

	return servicePath(StatsServiceName), mux
}

func withJSON(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)
}

func servicePath(serviceName string) string {
	return "/" + serviceName + "/"
}
