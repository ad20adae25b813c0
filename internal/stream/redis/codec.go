package redis

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/povarna/algo-drills/internal/models"
)

// PayloadField is the stream entry field that carries the JSON document
const PayloadField = "payload"

var ErrMissingPayload = errors.New("missing payload field")

func EncodeRequest(req models.SolveRequest) (map[string]any, error) {
	return encode(req)
}

func EncodeResult(result models.SolveResult) (map[string]any, error) {
	return encode(result)
}

func encode(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return map[string]any{PayloadField: string(data)}, nil
}

func DecodeRequest(values map[string]any) (models.SolveRequest, error) {
	var req models.SolveRequest

	payload, ok := values[PayloadField].(string)
	if !ok {
		return req, ErrMissingPayload
	}
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return req, fmt.Errorf("failed to decode payload: %w", err)
	}
	return req, nil
}
