package repository

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/CoffeeLedger/pkg/model"
)

type PersonRepository interface {
	AddPerson(ctx context.Context, person model.Person) (*model.Person, error)
	UpdatePerson(ctx context.Context, personID uint, name string, initials string, color string) (*model.Person, error)
	DeletePerson(ctx context.Context, personID uint) error
	GetPeople(ctx context.Context) ([]*model.Person, error)
	GetPeopleByIDs(ctx context.Context, personIDs []uint) (map[uint]model.Person, error)
}

func (r *Repository) AddPerson(ctx context.Context, person model.Person) (*model.Person, error) {
	if result := r.DB.WithContext(ctx).Create(&person); result.Error != nil {
		return nil, result.Error
	}

	return &person, nil
}

func (r *Repository) UpdatePerson(ctx context.Context, personID uint, name string, initials string, color string) (*model.Person, error) {
	result := r.DB.WithContext(ctx).Model(&model.Person{}).
		Where("id = ?", personID).
		Updates(map[string]any{"name": name, "initials": initials, "color": color})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, ErrPersonNotFound
	}

	var person model.Person
	if result := r.DB.WithContext(ctx).First(&person, personID); result.Error != nil {
		return nil, result.Error
	}

	return &person, nil
}

func (r *Repository) DeletePerson(ctx context.Context, personID uint) error {
	result := r.DB.WithContext(ctx).Delete(&model.Person{}, personID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrPersonNotFound
	}

	return nil
}

func (r *Repository) GetPeople(ctx context.Context) ([]*model.Person, error) {
	var people []*model.Person

	if result := r.DB.WithContext(ctx).Order(`name COLLATE "C", id`).Find(&people); result.Error != nil {
		return nil, result.Error
	}

	return people, nil
}

func (r *Repository) GetPeopleByIDs(ctx context.Context, personIDs []uint) (map[uint]model.Person, error) {
	peopleByID := make(map[uint]model.Person, len(personIDs))
	if len(personIDs) == 0 {
		return peopleByID, nil
	}

	var people []*model.Person

	if result := r.DB.WithContext(ctx).Where("id IN ?", personIDs).Find(&people); result.Error != nil {
		r.Logger.Error("error getting people by id", zap.Uints("person_ids", personIDs), zap.Error(result.Error))

		return nil, result.Error
	}

	for index := range people {
		person := people[index]
		peopleByID[person.ID] = *person
	}

	return peopleByID, nil
}
