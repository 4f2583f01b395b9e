package ledger

import (
	"context"
	"fmt"

	"droscher.com/CoffeeLedger/pkg/model"
)

func (l *Ledger) AddPerson(ctx context.Context, name string) (*model.Person, error) {
	name, err := requireName(name)
	if err != nil {
		return nil, err
	}

	person, err := l.people.AddPerson(ctx, model.Person{Name: name, Initials: Initials(name), Color: Color(name)})
	if err != nil {
		return nil, fmt.Errorf("adding person: %w", err)
	}

	return person, nil
}

// RenamePerson changes the name of personID and derives its initials and
// colour again from the new name.
func (l *Ledger) RenamePerson(ctx context.Context, personID uint, name string) (*model.Person, error) {
	name, nameErr := requireName(name)
	if err := combine(requireID("id", personID), nameErr); err != nil {
		return nil, err
	}

	person, err := l.people.UpdatePerson(ctx, personID, name, Initials(name), Color(name))
	if err != nil {
		return nil, fmt.Errorf("renaming person %d: %w", personID, err)
	}

	return person, nil
}

// DeletePerson removes personID. Events that reference the person keep the id.
func (l *Ledger) DeletePerson(ctx context.Context, personID uint) error {
	if err := requireID("id", personID); err != nil {
		return err
	}

	if err := l.people.DeletePerson(ctx, personID); err != nil {
		return fmt.Errorf("deleting person %d: %w", personID, err)
	}

	return nil
}

func (l *Ledger) ListPeople(ctx context.Context) ([]*model.Person, error) {
	people, err := l.people.GetPeople(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing people: %w", err)
	}

	return people, nil
}
