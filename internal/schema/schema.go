// Package schema checks decoded JSON payloads against a set of required keys.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var ErrEmptyBody = errors.New("request body is empty")

// Decode parses a JSON document. Numbers are kept as json.Number so that ids
// round-trip with the caller's original representation.
func Decode(body []byte) (any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrEmptyBody
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var payload any
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode request body: %w", err)
	}

	// trailing data after the first value is not a valid document
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode request body: unexpected data after JSON value")
	}

	return payload, nil
}

// ValidateSingle reports whether payload is a JSON object holding every key
// in required. Extra keys are allowed.
func ValidateSingle(payload any, required []string) bool {
	doc, ok := payload.(map[string]any)
	if !ok {
		return false
	}

	for _, key := range required {
		if _, ok := doc[key]; !ok {
			return false
		}
	}
	return true
}

// ValidateBatch reports whether payload is a JSON array whose every element
// passes ValidateSingle.
func ValidateBatch(payload any, required []string) bool {
	docs, ok := payload.([]any)
	if !ok {
		return false
	}

	for _, doc := range docs {
		if !ValidateSingle(doc, required) {
			return false
		}
	}
	return true
}
