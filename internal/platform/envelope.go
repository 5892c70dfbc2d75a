package platform

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/finovahq/agentdesk/internal/errors"
)

// The backend is inconsistent about response envelopes: some endpoints
// return a bare JSON value, others wrap it as {"data": ...}, sometimes with
// extra sibling fields. Every decode goes through these two helpers so
// callers tolerate both shapes.

// decodeObject unmarshals body into target, unwrapping a {"data": ...}
// envelope when present
func decodeObject(body []byte, target interface{}) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}

	if trimmed[0] == '{' {
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &envelope); err == nil {
			if data, ok := envelope["data"]; ok {
				if err := json.Unmarshal(data, target); err == nil {
					return nil
				}
			}
		}
	}

	if err := json.Unmarshal(trimmed, target); err != nil {
		return errors.NewResponseShapeError(err)
	}
	return nil
}

// decodeList unmarshals a list response that is either a bare array or a
// {"data": [...]} envelope. The second return value carries any extra
// envelope fields (e.g. total_earnings on the cases endpoint).
func decodeList[T any](body []byte) ([]T, map[string]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, nil, nil
	}

	// Bare array
	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, nil, errors.NewResponseShapeError(err)
		}
		return items, nil, nil
	}

	// Wrapped envelope
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, nil, errors.NewResponseShapeError(err)
	}

	data, ok := envelope["data"]
	if !ok {
		return nil, nil, errors.NewResponseShapeError(fmt.Errorf("object response has no data field"))
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, nil, errors.NewResponseShapeError(err)
	}

	delete(envelope, "data")
	return items, envelope, nil
}

// extraFloat reads a numeric extra envelope field, returning zero when absent
func extraFloat(extras map[string]json.RawMessage, key string) float64 {
	raw, ok := extras[key]
	if !ok {
		return 0
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0
	}
	return v
}
