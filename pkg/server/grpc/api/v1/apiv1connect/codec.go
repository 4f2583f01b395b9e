package apiv1connect

import (
	"encoding/json"
	"fmt"
)

// JSONCodec marshals the coffeeledger.v1 messages as plain JSON. It takes the
// "json" name, so it serves the application/json and application/connect+json
// content types.
type JSONCodec struct{}

func (JSONCodec) Name() string {
	return "json"
}

func (JSONCodec) Marshal(message any) ([]byte, error) {
	data, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", message, err)
	}

	return data, nil
}

// Unmarshal treats an empty body as an empty message.
func (JSONCodec) Unmarshal(data []byte, message any) error {
	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, message); err != nil {
		return fmt.Errorf("unmarshal into %T: %w", message, err)
	}

	return nil
}
