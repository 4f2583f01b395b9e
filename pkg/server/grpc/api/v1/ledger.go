// Package apiv1 holds the coffeeledger.v1 request and response messages. They
// travel as JSON with camelCase field names.
package apiv1

import "time"

type Person struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Initials  string    `json:"initials"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Bean struct {
	ID         uint64    `json:"id,omitempty"`
	Name       string    `json:"name"`
	Origin     *string   `json:"origin"`
	RoastLevel *string   `json:"roastLevel"`
	Notes      *string   `json:"notes"`
	CreatedAt  time.Time `json:"createdAt,omitzero"`
	UpdatedAt  time.Time `json:"updatedAt,omitzero"`
}

type Participant struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Initials string `json:"initials"`
	Color    string `json:"color"`
}

type ConsumptionEvent struct {
	ID             uint64    `json:"id"`
	MakerID        *uint64   `json:"makerId"`
	ParticipantIDs []uint64  `json:"participantIds"`
	BeanID         *uint64   `json:"beanId"`
	Cups           int32     `json:"cups"`
	Notes          *string   `json:"notes"`
	RecordedAt     time.Time `json:"recordedAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ConsumptionEntry is a listed event with its display data. Maker and bean
// fields are null when the reference is unset or no longer exists.
type ConsumptionEntry struct {
	ConsumptionEvent
	MakerName     *string       `json:"makerName"`
	MakerInitials *string       `json:"makerInitials"`
	MakerColor    *string       `json:"makerColor"`
	BeanName      *string       `json:"beanName"`
	Participants  []Participant `json:"participants"`
}

type DailyCups struct {
	Date string `json:"date"`
	Cups int64  `json:"cups"`
}

type DeleteResponse struct {
	Success bool `json:"success"`
}

type AddPersonRequest struct {
	Name string `json:"name"`
}

type AddPersonResponse struct {
	Person *Person `json:"person"`
}

type UpdatePersonRequest struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type UpdatePersonResponse struct {
	Person *Person `json:"person"`
}

type DeletePersonRequest struct {
	ID uint64 `json:"id"`
}

type GetPeopleRequest struct{}

type GetPeopleResponse struct {
	People []*Person `json:"people"`
}

type AddBeanRequest struct {
	Name       string  `json:"name"`
	Origin     *string `json:"origin,omitempty"`
	RoastLevel *string `json:"roastLevel,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

type AddBeanResponse struct {
	Bean *Bean `json:"bean"`
}

type UpdateBeanRequest struct {
	ID         uint64  `json:"id"`
	Name       string  `json:"name"`
	Origin     *string `json:"origin,omitempty"`
	RoastLevel *string `json:"roastLevel,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

type UpdateBeanResponse struct {
	Bean *Bean `json:"bean"`
}

type DeleteBeanRequest struct {
	ID uint64 `json:"id"`
}

type GetBeansRequest struct{}

type GetBeansResponse struct {
	Beans []*Bean `json:"beans"`
}

type FindBeanRequest struct {
	Query string `json:"query"`
}

type FindBeanResponse struct {
	Beans []*Bean `json:"beans"`
}

type RecordConsumptionRequest struct {
	Cups           int32    `json:"cups"`
	MakerID        *uint64  `json:"makerId,omitempty"`
	ParticipantIDs []uint64 `json:"participantIds,omitempty"`
	BeanID         *uint64  `json:"beanId,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

type RecordConsumptionResponse struct {
	Event *ConsumptionEvent `json:"event"`
}

type UpdateConsumptionRequest struct {
	ID             uint64   `json:"id"`
	Cups           int32    `json:"cups"`
	MakerID        *uint64  `json:"makerId,omitempty"`
	ParticipantIDs []uint64 `json:"participantIds,omitempty"`
	BeanID         *uint64  `json:"beanId,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

type UpdateConsumptionResponse struct {
	Event *ConsumptionEvent `json:"event"`
}

type DeleteConsumptionRequest struct {
	ID uint64 `json:"id"`
}

type ListConsumptionRequest struct {
	Limit *int32 `json:"limit,omitempty"`
}

type ListConsumptionResponse struct {
	Events []*ConsumptionEntry `json:"events"`
}

type GetStatsRequest struct {
	Daily bool   `json:"daily,omitempty"`
	Days  *int32 `json:"days,omitempty"`
}

// GetStatsResponse carries either the three window totals or, for a daily
// request, the per-day series.
type GetStatsResponse struct {
	Today *int64      `json:"today,omitempty"`
	Week  *int64      `json:"week,omitempty"`
	Month *int64      `json:"month,omitempty"`
	Daily []DailyCups `json:"daily,omitempty"`
}
