package server_test

import (
	"time"

	"github.com/bufbuild/connect-go"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/CoffeeLedger/mocks"
	"droscher.com/CoffeeLedger/pkg/ledger"
)

var recordedAt = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

type ServerSuite struct {
	suite.Suite
	people       *mocks.PersonRepository
	beans        *mocks.BeanRepository
	events       *mocks.ConsumptionRepository
	ledger       *ledger.Ledger
	logger       *zap.Logger
	observedLogs *observer.ObservedLogs
}

func (suite *ServerSuite) SetupTest() {
	suite.people = mocks.NewPersonRepository(suite.T())
	suite.beans = mocks.NewBeanRepository(suite.T())
	suite.events = mocks.NewConsumptionRepository(suite.T())

	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	suite.logger = zap.New(observedZapCore)

	suite.ledger = ledger.New(suite.people, suite.beans, suite.events, suite.logger,
		ledger.WithClock(func() time.Time { return recordedAt }))
}

func (suite *ServerSuite) requireCode(err error, code connect.Code) {
	suite.Require().Error(err)
	suite.Equal(code, connect.CodeOf(err))
}
