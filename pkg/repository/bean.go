package repository

import (
	"context"

	"droscher.com/CoffeeLedger/pkg/model"
)

type BeanRepository interface {
	AddBean(ctx context.Context, bean model.Bean) (*model.Bean, error)
	UpdateBean(ctx context.Context, bean model.Bean) (*model.Bean, error)
	DeleteBean(ctx context.Context, beanID uint) error
	GetBeans(ctx context.Context) ([]*model.Bean, error)
}

func (r *Repository) AddBean(ctx context.Context, bean model.Bean) (*model.Bean, error) {
	if result := r.DB.WithContext(ctx).Create(&bean); result.Error != nil {
		return nil, result.Error
	}

	return &bean, nil
}

// UpdateBean replaces every editable column of the bean with bean.ID,
// including clearing the optional ones.
func (r *Repository) UpdateBean(ctx context.Context, bean model.Bean) (*model.Bean, error) {
	result := r.DB.WithContext(ctx).Model(&model.Bean{}).
		Where("id = ?", bean.ID).
		Select("name", "origin", "roast_level", "notes").
		Updates(&bean)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, ErrBeanNotFound
	}

	var updated model.Bean
	if result := r.DB.WithContext(ctx).First(&updated, bean.ID); result.Error != nil {
		return nil, result.Error
	}

	return &updated, nil
}

func (r *Repository) DeleteBean(ctx context.Context, beanID uint) error {
	result := r.DB.WithContext(ctx).Delete(&model.Bean{}, beanID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrBeanNotFound
	}

	return nil
}

func (r *Repository) GetBeans(ctx context.Context) ([]*model.Bean, error) {
	var beans []*model.Bean

	if result := r.DB.WithContext(ctx).Order(`name COLLATE "C", id`).Find(&beans); result.Error != nil {
		return nil, result.Error
	}

	return beans, nil
}
