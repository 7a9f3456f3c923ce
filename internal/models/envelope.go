package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrMalformedEnvelope is returned when a response body is not a {"payload": ...} object
var ErrMalformedEnvelope = errors.New("malformed envelope")

// Envelope wraps list responses of the catalog API
type Envelope[T any] struct {
	Payload T `json:"payload"`
}

// NewEnvelope wraps a payload
func NewEnvelope[T any](payload T) Envelope[T] {
	return Envelope[T]{Payload: payload}
}

// DecodeEnvelope reads a JSON envelope and returns its payload.
// The body must be a JSON object with a non-null "payload" key.
func DecodeEnvelope[T any](r io.Reader) (T, error) {
	var zero T

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}
	if raw == nil {
		return zero, fmt.Errorf("%w: body is null", ErrMalformedEnvelope)
	}

	payload, ok := raw["payload"]
	if !ok {
		return zero, fmt.Errorf("%w: missing payload", ErrMalformedEnvelope)
	}
	if bytes.Equal(bytes.TrimSpace(payload), []byte("null")) {
		return zero, fmt.Errorf("%w: payload is null", ErrMalformedEnvelope)
	}

	var result T
	if err := json.Unmarshal(payload, &result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}

	return result, nil
}
