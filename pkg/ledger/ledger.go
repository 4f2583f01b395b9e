// Package ledger validates writes to the coffee ledger and enriches consumption
// listings with the maker, bean and participant display data.
package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/CoffeeLedger/pkg/repository"
)

const DefaultListLimit = 20

var ErrInvalidInput = errors.New("invalid input")

// Clock supplies the instant new consumption events are recorded at.
type Clock func() time.Time

type Ledger struct {
	people       repository.PersonRepository
	beans        repository.BeanRepository
	events       repository.ConsumptionRepository
	logger       *zap.Logger
	clock        Clock
	defaultLimit int
}

type Option func(*Ledger)

func WithClock(clock Clock) Option {
	return func(l *Ledger) {
		l.clock = clock
	}
}

// WithDefaultListLimit sets the page size used when a listing does not ask for
// one. Values below one are ignored.
func WithDefaultListLimit(limit int) Option {
	return func(l *Ledger) {
		if limit > 0 {
			l.defaultLimit = limit
		}
	}
}

func New(
	people repository.PersonRepository,
	beans repository.BeanRepository,
	events repository.ConsumptionRepository,
	logger *zap.Logger,
	options ...Option,
) *Ledger {
	ledger := &Ledger{
		people:       people,
		beans:        beans,
		events:       events,
		logger:       logger,
		clock:        time.Now,
		defaultLimit: DefaultListLimit,
	}

	for _, option := range options {
		option(ledger)
	}

	return ledger
}

func invalid(field string, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidInput, field, reason)
}

func requireID(field string, id uint) error {
	if id == 0 {
		return invalid(field, "is required")
	}

	return nil
}

func requireName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", invalid("name", "must not be empty")
	}

	return trimmed, nil
}

// optional trims value and reports a blank result as absent.
func optional(value *string) *string {
	if value == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

func positiveReference(field string, id *uint) error {
	if id != nil && *id == 0 {
		return invalid(field, "must be a positive id")
	}

	return nil
}

func combine(errs ...error) error {
	return multierr.Combine(errs...)
}
