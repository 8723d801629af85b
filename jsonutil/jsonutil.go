// Package jsonutil encodes arbitrary values as JSON by normalizing them
// first, so that models, enums, timestamps, cyclic graphs, and sensitive
// values all encode the way the rest of the platform expects.
package jsonutil

import (
	"encoding/json"
	"fmt"

	"github.com/norman-ai/utils/normalize"
)

// Marshal normalizes v and encodes the result with encoding/json.
//
// Values encoding/json would reject outright (models without exported
// fields, time values needing the platform layout, shared subtrees) are
// handled by normalization; leaves that remain unencodable after
// normalization surface here as an encoding error.
func Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(normalize.Normalize(v))
	if err != nil {
		return nil, fmt.Errorf("jsonutil: marshal: %w", err)
	}
	return data, nil
}

// MarshalIndent is Marshal with indentation, for logs and fixtures.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	data, err := json.MarshalIndent(normalize.Normalize(v), prefix, indent)
	if err != nil {
		return nil, fmt.Errorf("jsonutil: marshal: %w", err)
	}
	return data, nil
}

// Decode parses a single JSON document into T.
func Decode[T any](data []byte) (*T, error) {
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("jsonutil: decode: %w", err)
	}
	return &out, nil
}
