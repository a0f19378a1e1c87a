package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyPayload is returned when an event carries no payload to decode
var ErrEmptyPayload = errors.New("event has no payload")

// DecodePayload returns an event payload as T.
// MemoryBus hands over the struct itself (or a pointer to it). Payloads that
// crossed a process boundary arrive as raw JSON or generic maps and are decoded.
func DecodePayload[T any](payload interface{}) (T, error) {
	var out T
	switch v := payload.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return out, fmt.Errorf("%w: nil %T", ErrEmptyPayload, v)
		}
		return *v, nil
	case nil:
		return out, fmt.Errorf("%w: want %T", ErrEmptyPayload, out)
	case json.RawMessage:
		return out, unmarshalPayload(v, &out)
	case []byte:
		return out, unmarshalPayload(v, &out)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return out, fmt.Errorf("encode %T payload: %w", payload, err)
	}
	return out, unmarshalPayload(data, &out)
}

func unmarshalPayload[T any](data []byte, out *T) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode payload as %T: %w", *out, err)
	}
	return nil
}
