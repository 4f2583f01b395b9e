package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"droscher.com/CoffeeLedger/pkg/model"
)

// BeanRepository is a testify mock of repository.BeanRepository.
type BeanRepository struct {
	mock.Mock
}

func NewBeanRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *BeanRepository {
	m := &BeanRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *BeanRepository) AddBean(ctx context.Context, bean model.Bean) (*model.Bean, error) {
	args := m.Called(ctx, bean)

	return pointerResult[model.Bean](args, 0), args.Error(1)
}

func (m *BeanRepository) UpdateBean(ctx context.Context, bean model.Bean) (*model.Bean, error) {
	args := m.Called(ctx, bean)

	return pointerResult[model.Bean](args, 0), args.Error(1)
}

func (m *BeanRepository) DeleteBean(ctx context.Context, beanID uint) error {
	return m.Called(ctx, beanID).Error(0)
}

func (m *BeanRepository) GetBeans(ctx context.Context) ([]*model.Bean, error) {
	args := m.Called(ctx)

	beans, _ := args.Get(0).([]*model.Bean)

	return beans, args.Error(1)
}
