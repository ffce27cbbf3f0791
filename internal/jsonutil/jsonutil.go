// Package jsonutil provides shared helpers for decoding JSON documents with
// contextual errors.
package jsonutil

import (
	"encoding/json"
	"fmt"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v any, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// UnmarshalStringMap decodes a flat JSON object whose values must all be
// strings. Non-string values are reported with their key.
func UnmarshalStringMap(data []byte, context string) (map[string]string, error) {
	var raw map[string]any
	if err := UnmarshalWithContext(data, &raw, context); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%s: key %q: expected string, got %T", context, k, v)
		}
		out[k] = s
	}
	return out, nil
}
