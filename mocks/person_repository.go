package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"droscher.com/CoffeeLedger/pkg/model"
)

// PersonRepository is a testify mock of repository.PersonRepository.
type PersonRepository struct {
	mock.Mock
}

func NewPersonRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *PersonRepository {
	m := &PersonRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *PersonRepository) AddPerson(ctx context.Context, person model.Person) (*model.Person, error) {
	args := m.Called(ctx, person)

	return pointerResult[model.Person](args, 0), args.Error(1)
}

func (m *PersonRepository) UpdatePerson(ctx context.Context, personID uint, name string, initials string, color string) (*model.Person, error) {
	args := m.Called(ctx, personID, name, initials, color)

	return pointerResult[model.Person](args, 0), args.Error(1)
}

func (m *PersonRepository) DeletePerson(ctx context.Context, personID uint) error {
	return m.Called(ctx, personID).Error(0)
}

func (m *PersonRepository) GetPeople(ctx context.Context) ([]*model.Person, error) {
	args := m.Called(ctx)

	people, _ := args.Get(0).([]*model.Person)

	return people, args.Error(1)
}

func (m *PersonRepository) GetPeopleByIDs(ctx context.Context, personIDs []uint) (map[uint]model.Person, error) {
	args := m.Called(ctx, personIDs)

	people, _ := args.Get(0).(map[uint]model.Person)

	return people, args.Error(1)
}
