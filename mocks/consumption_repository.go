package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"droscher.com/CoffeeLedger/pkg/model"
)

// ConsumptionRepository is a testify mock of repository.ConsumptionRepository.
type ConsumptionRepository struct {
	mock.Mock
}

func NewConsumptionRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ConsumptionRepository {
	m := &ConsumptionRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *ConsumptionRepository) AddConsumption(ctx context.Context, event model.ConsumptionEvent) (*model.ConsumptionEvent, error) {
	args := m.Called(ctx, event)

	return pointerResult[model.ConsumptionEvent](args, 0), args.Error(1)
}

func (m *ConsumptionRepository) UpdateConsumption(ctx context.Context, event model.ConsumptionEvent) (*model.ConsumptionEvent, error) {
	args := m.Called(ctx, event)

	return pointerResult[model.ConsumptionEvent](args, 0), args.Error(1)
}

func (m *ConsumptionRepository) DeleteConsumption(ctx context.Context, eventID uint) error {
	return m.Called(ctx, eventID).Error(0)
}

func (m *ConsumptionRepository) GetConsumptionListing(ctx context.Context, limit int) ([]*model.ConsumptionListing, error) {
	args := m.Called(ctx, limit)

	listing, _ := args.Get(0).([]*model.ConsumptionListing)

	return listing, args.Error(1)
}

// StatsRepository is a testify mock of repository.StatsRepository.
type StatsRepository struct {
	mock.Mock
}

func NewStatsRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *StatsRepository {
	m := &StatsRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *StatsRepository) SumCupsSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)

	total, _ := args.Get(0).(int64)

	return total, args.Error(1)
}

func (m *StatsRepository) DailyCupsSince(ctx context.Context, since time.Time, location *time.Location) ([]model.DailyCups, error) {
	args := m.Called(ctx, since, location)

	days, _ := args.Get(0).([]model.DailyCups)

	return days, args.Error(1)
}
