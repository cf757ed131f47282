package protocol

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/rocketscienceinc/connect5-client/internal/apperror"
	"github.com/rocketscienceinc/connect5-client/internal/entity"
)

var ErrInvalidMessage = errors.New("invalid push message")

// DecodeMessage validates and decodes a push envelope.
func DecodeMessage(raw []byte) (*Message, error) {
	if err := validate(messageSchema, raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMessage, err)
	}

	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message: %w", err)
	}

	return &msg, nil
}

// EncodeMessage builds an envelope around payload.
func EncodeMessage(action string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	data, err := json.Marshal(Message{Action: action, Payload: body})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return data, nil
}

// DecodeSnapshot validates raw against the game state schema and decodes it.
// Invalid snapshots wrap apperror.ErrMalformedState.
func DecodeSnapshot(raw []byte) (*entity.GameState, error) {
	if err := validate(gameStateSchema, raw); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrMalformedState, err)
	}

	var state entity.GameState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrMalformedState, err)
	}

	return &state, nil
}

func validate(schema *jsonschema.Schema, raw []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var doc any
	if err := decoder.Decode(&doc); err != nil {
		return fmt.Errorf("failed to parse json: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("failed to validate: %w", err)
	}

	return nil
}
