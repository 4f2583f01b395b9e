package ledger

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/CoffeeLedger/pkg/model"
)

type ConsumptionInput struct {
	Cups           int
	MakerID        *uint
	ParticipantIDs []uint
	BeanID         *uint
	Notes          *string
}

func (input ConsumptionInput) toModel() (model.ConsumptionEvent, error) {
	var cupsErr, participantsErr error

	if input.Cups < 1 {
		cupsErr = invalid("cups", fmt.Sprintf("must be at least 1, got %d", input.Cups))
	}

	if slices.Contains(input.ParticipantIDs, 0) {
		participantsErr = invalid("participantIds", "must only hold positive ids")
	}

	err := combine(
		cupsErr,
		positiveReference("makerId", input.MakerID),
		participantsErr,
		positiveReference("beanId", input.BeanID),
	)
	if err != nil {
		return model.ConsumptionEvent{}, err
	}

	return model.ConsumptionEvent{
		MakerID:        input.MakerID,
		ParticipantIDs: model.ParticipantIDs(slices.Clone(input.ParticipantIDs)),
		BeanID:         input.BeanID,
		Cups:           input.Cups,
		Notes:          optional(input.Notes),
	}, nil
}

// RecordConsumption stores a new event stamped with the ledger clock.
func (l *Ledger) RecordConsumption(ctx context.Context, input ConsumptionInput) (*model.ConsumptionEvent, error) {
	event, err := input.toModel()
	if err != nil {
		return nil, err
	}

	event.RecordedAt = l.clock()

	recorded, err := l.events.AddConsumption(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("recording consumption: %w", err)
	}

	l.logger.Debug("recorded consumption", zap.Uint("event_id", recorded.ID), zap.Int("cups", recorded.Cups))

	return recorded, nil
}

// UpdateConsumption replaces the editable fields of eventID. The time the
// event was recorded at does not change.
func (l *Ledger) UpdateConsumption(ctx context.Context, eventID uint, input ConsumptionInput) (*model.ConsumptionEvent, error) {
	event, inputErr := input.toModel()
	if err := combine(requireID("id", eventID), inputErr); err != nil {
		return nil, err
	}

	event.Model = gorm.Model{ID: eventID}

	updated, err := l.events.UpdateConsumption(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("updating consumption %d: %w", eventID, err)
	}

	return updated, nil
}

func (l *Ledger) DeleteConsumption(ctx context.Context, eventID uint) error {
	if err := requireID("id", eventID); err != nil {
		return err
	}

	if err := l.events.DeleteConsumption(ctx, eventID); err != nil {
		return fmt.Errorf("deleting consumption %d: %w", eventID, err)
	}

	return nil
}

// ListConsumption returns the newest events with their display data. A nil
// limit uses the ledger default. Participants that no longer resolve are left
// out of Participants but stay in ParticipantIDs.
func (l *Ledger) ListConsumption(ctx context.Context, limit *int) ([]*model.EnrichedConsumption, error) {
	pageSize := l.defaultLimit

	if limit != nil {
		if *limit < 1 {
			return nil, invalid("limit", fmt.Sprintf("must be at least 1, got %d", *limit))
		}

		pageSize = *limit
	}

	listing, err := l.events.GetConsumptionListing(ctx, pageSize)
	if err != nil {
		return nil, fmt.Errorf("listing consumption: %w", err)
	}

	people, err := l.people.GetPeopleByIDs(ctx, participantIDs(listing))
	if err != nil {
		return nil, fmt.Errorf("resolving participants: %w", err)
	}

	enriched := make([]*model.EnrichedConsumption, 0, len(listing))

	for _, row := range listing {
		participants := make([]model.Participant, 0, len(row.ParticipantIDs))

		for _, personID := range row.ParticipantIDs {
			person, ok := people[personID]
			if !ok {
				l.logger.Debug("participant no longer exists", zap.Uint("event_id", row.ID), zap.Uint("person_id", personID))

				continue
			}

			participants = append(participants, model.Participant{
				ID:       person.ID,
				Name:     person.Name,
				Initials: person.Initials,
				Color:    person.Color,
			})
		}

		enriched = append(enriched, &model.EnrichedConsumption{ConsumptionListing: *row, Participants: participants})
	}

	return enriched, nil
}

// participantIDs collects the distinct participant ids of a page in the order
// they first appear.
func participantIDs(listing []*model.ConsumptionListing) []uint {
	seen := make(map[uint]struct{})
	ids := make([]uint, 0)

	for _, row := range listing {
		for _, personID := range row.ParticipantIDs {
			if _, ok := seen[personID]; ok {
				continue
			}

			seen[personID] = struct{}{}
			ids = append(ids, personID)
		}
	}

	return ids
}
