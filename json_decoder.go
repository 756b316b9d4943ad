package languages

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// JSONDecoder implements the Decoder interface for JSON files.
type JSONDecoder struct{}

// NewJSONDecoder creates a new JSONDecoder instance.
func NewJSONDecoder() *JSONDecoder {
	return &JSONDecoder{}
}

// Decode parses JSON content and returns a map of text Values.
func (d *JSONDecoder) Decode(ctx context.Context, content []byte) (map[string]Value, error) {
	// Check for context cancellation
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrJSONDecodingCancelled, err)
	}

	// UseNumber keeps the integer/float distinction instead of decoding
	// every number to float64.
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()

	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}

	texts := make(map[string]Value, len(data))
	for key, raw := range data {
		value, err := newValue(raw)
		if err != nil {
			return nil, errors.Join(ErrFailedToParseJSON, err)
		}
		texts[key] = value
	}

	return texts, nil
}

// SupportsFileExtension checks if the decoder supports the given file extension.
func (d *JSONDecoder) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "json")
}
