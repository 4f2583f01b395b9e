package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnsupportedParticipantsType = errors.New("unsupported participant ids column type")

// ParticipantIDs is the ordered list of people credited with drinking in a
// consumption event. It is stored in a single text column, see
// EncodeParticipants.
type ParticipantIDs []uint

// EncodeParticipants packs ids into the persisted form. An empty list is
// stored as NULL, anything else as a JSON array in the original order.
func EncodeParticipants(ids []uint) *string {
	if len(ids) == 0 {
		return nil
	}

	encoded, err := json.Marshal(ids)
	if err != nil {
		return nil
	}

	text := string(encoded)

	return &text
}

// DecodeParticipants is the inverse of EncodeParticipants. A missing value or
// anything that is not a JSON array of non-negative integers decodes to an
// empty list rather than an error.
func DecodeParticipants(text *string) []uint {
	if text == nil || *text == "" {
		return []uint{}
	}

	var ids []uint
	if err := json.Unmarshal([]byte(*text), &ids); err != nil || ids == nil {
		return []uint{}
	}

	return ids
}

func (p ParticipantIDs) Value() (driver.Value, error) {
	encoded := EncodeParticipants(p)
	if encoded == nil {
		return nil, nil
	}

	return *encoded, nil
}

func (p *ParticipantIDs) Scan(src any) error {
	switch value := src.(type) {
	case nil:
		*p = ParticipantIDs{}
	case string:
		*p = DecodeParticipants(&value)
	case []byte:
		text := string(value)
		*p = DecodeParticipants(&text)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedParticipantsType, src)
	}

	return nil
}
