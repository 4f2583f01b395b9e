package server_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bufbuild/connect-go"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"droscher.com/CoffeeLedger/pkg/ledger"
	"droscher.com/CoffeeLedger/pkg/model"
	"droscher.com/CoffeeLedger/pkg/repository"
	"droscher.com/CoffeeLedger/pkg/server"
	apiv1 "droscher.com/CoffeeLedger/pkg/server/grpc/api/v1"
)

type PersonTestSuite struct {
	ServerSuite
	service *server.PersonServer
}

func TestPersonTestSuite(t *testing.T) {
	suite.Run(t, new(PersonTestSuite))
}

func (suite *PersonTestSuite) SetupTest() {
	suite.ServerSuite.SetupTest()
	suite.service = server.NewPersonServer(suite.ledger, suite.logger)
}

func (suite *PersonTestSuite) TestAddPerson_Success() {
	ctx := context.Background()
	color := ledger.Color("Grace Hopper")

	suite.people.On("AddPerson", ctx, model.Person{Name: "Grace Hopper", Initials: "GH", Color: color}).
		Return(&model.Person{Model: gorm.Model{ID: 1, CreatedAt: recordedAt}, Name: "Grace Hopper", Initials: "GH", Color: color}, nil)

	response, err := suite.service.AddPerson(ctx, connect.NewRequest(&apiv1.AddPersonRequest{Name: "Grace Hopper"}))

	suite.Require().NoError(err)
	suite.Equal(&apiv1.Person{ID: 1, Name: "Grace Hopper", Initials: "GH", Color: color, CreatedAt: recordedAt}, response.Msg.Person)
}

func (suite *PersonTestSuite) TestAddPerson_InvalidArgument() {
	response, err := suite.service.AddPerson(context.Background(), connect.NewRequest(&apiv1.AddPersonRequest{Name: "  "}))

	suite.Nil(response)
	suite.requireCode(err, connect.CodeInvalidArgument)
	suite.Require().ErrorIs(err, ledger.ErrInvalidInput)
}

func (suite *PersonTestSuite) TestUpdatePerson_NotFound() {
	ctx := context.Background()

	suite.people.On("UpdatePerson", ctx, uint(7), "Ada", "AD", ledger.Color("Ada")).Return(nil, repository.ErrPersonNotFound)

	response, err := suite.service.UpdatePerson(ctx, connect.NewRequest(&apiv1.UpdatePersonRequest{ID: 7, Name: "Ada"}))

	suite.Nil(response)
	suite.requireCode(err, connect.CodeNotFound)
}

func (suite *PersonTestSuite) TestUpdatePerson_MissingID() {
	response, err := suite.service.UpdatePerson(context.Background(), connect.NewRequest(&apiv1.UpdatePersonRequest{Name: "Ada"}))

	suite.Nil(response)
	suite.requireCode(err, connect.CodeInvalidArgument)
}

func (suite *PersonTestSuite) TestDeletePerson_Success() {
	ctx := context.Background()

	suite.people.On("DeletePerson", ctx, uint(7)).Return(nil)

	response, err := suite.service.DeletePerson(ctx, connect.NewRequest(&apiv1.DeletePersonRequest{ID: 7}))

	suite.Require().NoError(err)
	suite.True(response.Msg.Success)
}

func (suite *PersonTestSuite) TestGetPeople_HidesStoreErrors() {
	ctx := context.Background()

	suite.people.On("GetPeople", ctx).Return(nil, errors.New("password authentication failed for user postgres"))

	response, err := suite.service.GetPeople(ctx, connect.NewRequest(&apiv1.GetPeopleRequest{}))

	suite.Nil(response)
	suite.requireCode(err, connect.CodeInternal)
	suite.NotContains(err.Error(), "password")
	suite.Equal(1, suite.observedLogs.FilterMessage("error getting people").Len())
}

func (suite *PersonTestSuite) TestGetPeople_Success() {
	ctx := context.Background()

	suite.people.On("GetPeople", ctx).Return([]*model.Person{
		{Model: gorm.Model{ID: 2}, Name: "Ada", Initials: "AD", Color: "#DDA0DD"},
		{Model: gorm.Model{ID: 1}, Name: "Grace Hopper", Initials: "GH", Color: "#45B7D1"},
	}, nil)

	response, err := suite.service.GetPeople(ctx, connect.NewRequest(&apiv1.GetPeopleRequest{}))

	suite.Require().NoError(err)
	suite.Require().Len(response.Msg.People, 2)
	suite.Equal("Ada", response.Msg.People[0].Name)
	suite.Equal(uint64(1), response.Msg.People[1].ID)
}
