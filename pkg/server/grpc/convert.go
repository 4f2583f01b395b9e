package grpc

import (
	"go.openly.dev/pointy"

	"droscher.com/CoffeeLedger/pkg/ledger"
	"droscher.com/CoffeeLedger/pkg/model"
	api "droscher.com/CoffeeLedger/pkg/server/grpc/api/v1"
)

func PersonFromModel(person model.Person) *api.Person {
	return &api.Person{
		ID:        uint64(person.ID),
		Name:      person.Name,
		Initials:  person.Initials,
		Color:     person.Color,
		CreatedAt: person.CreatedAt,
		UpdatedAt: person.UpdatedAt,
	}
}

func PeopleFromModel(people []*model.Person) []*api.Person {
	pbPeople := make([]*api.Person, 0, len(people))

	for _, person := range people {
		pbPeople = append(pbPeople, PersonFromModel(*person))
	}

	return pbPeople
}

func BeanFromModel(bean model.Bean) *api.Bean {
	return &api.Bean{
		ID:         uint64(bean.ID),
		Name:       bean.Name,
		Origin:     bean.Origin,
		RoastLevel: bean.RoastLevel,
		Notes:      bean.Notes,
		CreatedAt:  bean.CreatedAt,
		UpdatedAt:  bean.UpdatedAt,
	}
}

func BeansFromModel(beans []model.Bean) []*api.Bean {
	pbBeans := make([]*api.Bean, 0, len(beans))

	for _, bean := range beans {
		pbBeans = append(pbBeans, BeanFromModel(bean))
	}

	return pbBeans
}

func StoredBeansFromModel(beans []*model.Bean) []*api.Bean {
	pbBeans := make([]*api.Bean, 0, len(beans))

	for _, bean := range beans {
		pbBeans = append(pbBeans, BeanFromModel(*bean))
	}

	return pbBeans
}

func BeanInputFromAdd(request *api.AddBeanRequest) ledger.BeanInput {
	return ledger.BeanInput{
		Name:       request.Name,
		Origin:     request.Origin,
		RoastLevel: request.RoastLevel,
		Notes:      request.Notes,
	}
}

func BeanInputFromUpdate(request *api.UpdateBeanRequest) ledger.BeanInput {
	return ledger.BeanInput{
		Name:       request.Name,
		Origin:     request.Origin,
		RoastLevel: request.RoastLevel,
		Notes:      request.Notes,
	}
}

func ConsumptionInputFromRecord(request *api.RecordConsumptionRequest) ledger.ConsumptionInput {
	return ledger.ConsumptionInput{
		Cups:           int(request.Cups),
		MakerID:        idToModel(request.MakerID),
		ParticipantIDs: idsToModel(request.ParticipantIDs),
		BeanID:         idToModel(request.BeanID),
		Notes:          request.Notes,
	}
}

func ConsumptionInputFromUpdate(request *api.UpdateConsumptionRequest) ledger.ConsumptionInput {
	return ledger.ConsumptionInput{
		Cups:           int(request.Cups),
		MakerID:        idToModel(request.MakerID),
		ParticipantIDs: idsToModel(request.ParticipantIDs),
		BeanID:         idToModel(request.BeanID),
		Notes:          request.Notes,
	}
}

func ConsumptionEventFromModel(event model.ConsumptionEvent) *api.ConsumptionEvent {
	return &api.ConsumptionEvent{
		ID:             uint64(event.ID),
		MakerID:        idFromModel(event.MakerID),
		ParticipantIDs: idsFromModel(event.ParticipantIDs),
		BeanID:         idFromModel(event.BeanID),
		Cups:           int32(event.Cups), //nolint:gosec // cups are small positive counts
		Notes:          event.Notes,
		RecordedAt:     event.RecordedAt,
		UpdatedAt:      event.UpdatedAt,
	}
}

func ConsumptionEntriesFromModel(listing []*model.EnrichedConsumption) []*api.ConsumptionEntry {
	entries := make([]*api.ConsumptionEntry, 0, len(listing))

	for _, row := range listing {
		participants := make([]api.Participant, 0, len(row.Participants))
		for _, participant := range row.Participants {
			participants = append(participants, api.Participant{
				ID:       uint64(participant.ID),
				Name:     participant.Name,
				Initials: participant.Initials,
				Color:    participant.Color,
			})
		}

		entries = append(entries, &api.ConsumptionEntry{
			ConsumptionEvent: api.ConsumptionEvent{
				ID:             uint64(row.ID),
				MakerID:        idFromModel(row.MakerID),
				ParticipantIDs: idsFromModel(row.ParticipantIDs),
				BeanID:         idFromModel(row.BeanID),
				Cups:           int32(row.Cups), //nolint:gosec // cups are small positive counts
				Notes:          row.Notes,
				RecordedAt:     row.RecordedAt,
				UpdatedAt:      row.UpdatedAt,
			},
			MakerName:     row.MakerName,
			MakerInitials: row.MakerInitials,
			MakerColor:    row.MakerColor,
			BeanName:      row.BeanName,
			Participants:  participants,
		})
	}

	return entries
}

func DailyFromModel(series []model.DailyCups) []api.DailyCups {
	daily := make([]api.DailyCups, 0, len(series))

	for _, day := range series {
		daily = append(daily, api.DailyCups{Date: day.Date, Cups: day.Cups})
	}

	return daily
}

func idToModel(id *uint64) *uint {
	if id == nil {
		return nil
	}

	return pointy.Uint(uint(*id))
}

func idsToModel(ids []uint64) []uint {
	if len(ids) == 0 {
		return nil
	}

	modelIDs := make([]uint, 0, len(ids))
	for _, id := range ids {
		modelIDs = append(modelIDs, uint(id))
	}

	return modelIDs
}

func idFromModel(id *uint) *uint64 {
	if id == nil {
		return nil
	}

	return pointy.Uint64(uint64(*id))
}

// idsFromModel never returns nil, so an event without participants lists [].
func idsFromModel(ids model.ParticipantIDs) []uint64 {
	pbIDs := make([]uint64, 0, len(ids))
	for _, id := range ids {
		pbIDs = append(pbIDs, uint64(id))
	}

	return pbIDs
}
