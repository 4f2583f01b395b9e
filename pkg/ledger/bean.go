package ledger

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"droscher.com/CoffeeLedger/pkg/model"
)

type BeanInput struct {
	Name       string
	Origin     *string
	RoastLevel *string
	Notes      *string
}

func (input BeanInput) toModel() (model.Bean, error) {
	name, err := requireName(input.Name)
	if err != nil {
		return model.Bean{}, err
	}

	return model.Bean{
		Name:       name,
		Origin:     optional(input.Origin),
		RoastLevel: optional(input.RoastLevel),
		Notes:      optional(input.Notes),
	}, nil
}

func (l *Ledger) AddBean(ctx context.Context, input BeanInput) (*model.Bean, error) {
	bean, err := input.toModel()
	if err != nil {
		return nil, err
	}

	added, err := l.beans.AddBean(ctx, bean)
	if err != nil {
		return nil, fmt.Errorf("adding bean: %w", err)
	}

	return added, nil
}

// UpdateBean replaces every field of beanID with input. Optional fields left
// blank are cleared.
func (l *Ledger) UpdateBean(ctx context.Context, beanID uint, input BeanInput) (*model.Bean, error) {
	bean, inputErr := input.toModel()
	if err := combine(requireID("id", beanID), inputErr); err != nil {
		return nil, err
	}

	bean.Model = gorm.Model{ID: beanID}

	updated, err := l.beans.UpdateBean(ctx, bean)
	if err != nil {
		return nil, fmt.Errorf("updating bean %d: %w", beanID, err)
	}

	return updated, nil
}

func (l *Ledger) DeleteBean(ctx context.Context, beanID uint) error {
	if err := requireID("id", beanID); err != nil {
		return err
	}

	if err := l.beans.DeleteBean(ctx, beanID); err != nil {
		return fmt.Errorf("deleting bean %d: %w", beanID, err)
	}

	return nil
}

func (l *Ledger) ListBeans(ctx context.Context) ([]*model.Bean, error) {
	beans, err := l.beans.GetBeans(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing beans: %w", err)
	}

	return beans, nil
}
