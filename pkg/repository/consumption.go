package repository

import (
	"context"
	"time"

	"go.uber.org/zap"

	"droscher.com/CoffeeLedger/pkg/model"
)

type ConsumptionRepository interface {
	AddConsumption(ctx context.Context, event model.ConsumptionEvent) (*model.ConsumptionEvent, error)
	UpdateConsumption(ctx context.Context, event model.ConsumptionEvent) (*model.ConsumptionEvent, error)
	DeleteConsumption(ctx context.Context, eventID uint) error
	GetConsumptionListing(ctx context.Context, limit int) ([]*model.ConsumptionListing, error)
}

type StatsRepository interface {
	SumCupsSince(ctx context.Context, since time.Time) (int64, error)
	DailyCupsSince(ctx context.Context, since time.Time, location *time.Location) ([]model.DailyCups, error)
}

func (r *Repository) AddConsumption(ctx context.Context, event model.ConsumptionEvent) (*model.ConsumptionEvent, error) {
	if result := r.DB.WithContext(ctx).Create(&event); result.Error != nil {
		return nil, result.Error
	}

	return &event, nil
}

// UpdateConsumption overwrites the editable columns of event.ID. RecordedAt is
// never written.
func (r *Repository) UpdateConsumption(ctx context.Context, event model.ConsumptionEvent) (*model.ConsumptionEvent, error) {
	result := r.DB.WithContext(ctx).Model(&model.ConsumptionEvent{}).
		Where("id = ?", event.ID).
		Select("maker_id", "participant_ids", "bean_id", "cups", "notes").
		Updates(&event)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, ErrConsumptionNotFound
	}

	var updated model.ConsumptionEvent
	if result := r.DB.WithContext(ctx).First(&updated, event.ID); result.Error != nil {
		return nil, result.Error
	}

	return &updated, nil
}

func (r *Repository) DeleteConsumption(ctx context.Context, eventID uint) error {
	result := r.DB.WithContext(ctx).Delete(&model.ConsumptionEvent{}, eventID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrConsumptionNotFound
	}

	return nil
}

// GetConsumptionListing returns the newest events first, with the maker and
// bean display columns joined in. Deleted people and beans do not join.
func (r *Repository) GetConsumptionListing(ctx context.Context, limit int) ([]*model.ConsumptionListing, error) {
	var listing []*model.ConsumptionListing

	result := r.DB.WithContext(ctx).Table("consumption_events as ce").
		Select("ce.id, ce.created_at, ce.updated_at, ce.maker_id, ce.participant_ids, ce.bean_id, ce.cups, ce.notes, ce.recorded_at, " +
			"maker.name as maker_name, maker.initials as maker_initials, maker.color as maker_color, " +
			"bean.name as bean_name").
		Joins("LEFT JOIN people maker on maker.id = ce.maker_id and maker.deleted_at is null").
		Joins("LEFT JOIN beans bean on bean.id = ce.bean_id and bean.deleted_at is null").
		Where("ce.deleted_at is null").
		Order("ce.recorded_at desc, ce.id desc").
		Limit(limit).
		Scan(&listing)
	if result.Error != nil {
		r.Logger.Error("error getting consumption listing", zap.Int("limit", limit), zap.Error(result.Error))

		return nil, result.Error
	}

	return listing, nil
}

func (r *Repository) SumCupsSince(ctx context.Context, since time.Time) (int64, error) {
	var total int64

	result := r.DB.WithContext(ctx).Model(&model.ConsumptionEvent{}).
		Select("coalesce(sum(cups), 0)").
		Where("recorded_at >= ?", since).
		Scan(&total)
	if result.Error != nil {
		return 0, result.Error
	}

	return total, nil
}

// DailyCupsSince sums cups per calendar day in location, for days that have
// at least one event on or after since. Days are formatted as YYYY-MM-DD.
func (r *Repository) DailyCupsSince(ctx context.Context, since time.Time, location *time.Location) ([]model.DailyCups, error) {
	var days []model.DailyCups

	result := r.DB.WithContext(ctx).Model(&model.ConsumptionEvent{}).
		Select("to_char(recorded_at at time zone ?, 'YYYY-MM-DD') as day, sum(cups) as cups", location.String()).
		Where("recorded_at >= ?", since).
		Group("day").
		Order("day").
		Scan(&days)
	if result.Error != nil {
		return nil, result.Error
	}

	return days, nil
}
