package model

import (
	"time"

	"gorm.io/gorm"
)

// ConsumptionEvent is one recorded round of coffee. MakerID, BeanID and
// ParticipantIDs are plain ids without associations, so deleting a person or
// bean leaves them in place.
type ConsumptionEvent struct {
	gorm.Model
	MakerID        *uint          `gorm:"index"`
	ParticipantIDs ParticipantIDs `gorm:"type:text"`
	BeanID         *uint          `gorm:"index"`
	Cups           int            `gorm:"not null;default:1;check:chk_consumption_cups,cups >= 1"`
	Notes          *string
	RecordedAt     time.Time `gorm:"not null;index"`
}

// ConsumptionListing is a consumption row joined with the maker and bean
// display columns. The joined columns are nil when the reference is unset or
// no longer resolves.
type ConsumptionListing struct {
	ID             uint
	CreatedAt      time.Time
	UpdatedAt      time.Time
	MakerID        *uint
	ParticipantIDs ParticipantIDs
	BeanID         *uint
	Cups           int
	Notes          *string
	RecordedAt     time.Time
	MakerName      *string
	MakerInitials  *string
	MakerColor     *string
	BeanName       *string
}

type Participant struct {
	ID       uint
	Name     string
	Initials string
	Color    string
}

type EnrichedConsumption struct {
	ConsumptionListing
	Participants []Participant
}
