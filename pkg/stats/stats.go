// Package stats computes cup totals over calendar windows. Every entry point
// takes the reference instant explicitly; nothing here reads the wall clock.
package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"droscher.com/CoffeeLedger/pkg/model"
	"droscher.com/CoffeeLedger/pkg/repository"
)

const (
	DateLayout  = "2006-01-02"
	DefaultDays = 30
	MaxDays     = 3660
	daysPerWeek = 7
)

var ErrInvalidWindow = errors.New("invalid stats window")

type Engine struct {
	repository repository.StatsRepository
	location   *time.Location
}

// Windows holds the start instants the totals are summed from.
type Windows struct {
	Today time.Time
	Week  time.Time
	Month time.Time
}

func NewEngine(repo repository.StatsRepository, location *time.Location) *Engine {
	if location == nil {
		location = time.UTC
	}

	return &Engine{repository: repo, location: location}
}

func (e *Engine) Location() *time.Location {
	return e.location
}

// Windows returns the start of the day, the Monday-based week and the month
// containing now, in the engine's location.
func (e *Engine) Windows(now time.Time) Windows {
	local := now.In(e.location)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, e.location)

	daysSinceMonday := (int(local.Weekday()) + daysPerWeek - 1) % daysPerWeek

	return Windows{
		Today: today,
		Week:  today.AddDate(0, 0, -daysSinceMonday),
		Month: time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, e.location),
	}
}

func (e *Engine) Totals(ctx context.Context, now time.Time) (*model.Totals, error) {
	windows := e.Windows(now)

	today, err := e.repository.SumCupsSince(ctx, windows.Today)
	if err != nil {
		return nil, fmt.Errorf("summing today's cups: %w", err)
	}

	week, err := e.repository.SumCupsSince(ctx, windows.Week)
	if err != nil {
		return nil, fmt.Errorf("summing this week's cups: %w", err)
	}

	month, err := e.repository.SumCupsSince(ctx, windows.Month)
	if err != nil {
		return nil, fmt.Errorf("summing this month's cups: %w", err)
	}

	return &model.Totals{Today: today, Week: week, Month: month}, nil
}

// Daily returns one entry per calendar day for the days ending on the day
// containing now, oldest first. Days without events report zero cups.
func (e *Engine) Daily(ctx context.Context, now time.Time, days int) ([]model.DailyCups, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: days must be at least 1, got %d", ErrInvalidWindow, days)
	}

	if days > MaxDays {
		return nil, fmt.Errorf("%w: days must be at most %d, got %d", ErrInvalidWindow, MaxDays, days)
	}

	today := e.Windows(now).Today
	start := today.AddDate(0, 0, -(days - 1))

	grouped, err := e.repository.DailyCupsSince(ctx, start, e.location)
	if err != nil {
		return nil, fmt.Errorf("grouping cups by day: %w", err)
	}

	cupsByDate := make(map[string]int64, len(grouped))
	for _, day := range grouped {
		cupsByDate[day.Date] += day.Cups
	}

	series := make([]model.DailyCups, 0, days)

	for offset := range days {
		date := start.AddDate(0, 0, offset).Format(DateLayout)
		series = append(series, model.DailyCups{Date: date, Cups: cupsByDate[date]})
	}

	return series, nil
}
