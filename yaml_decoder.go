package languages

import (
	"context"
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLDecoder implements the Decoder interface for YAML files.
type YAMLDecoder struct{}

// NewYAMLDecoder creates a new YAMLDecoder instance.
func NewYAMLDecoder() *YAMLDecoder {
	return &YAMLDecoder{}
}

// Decode parses YAML content and returns a map of text Values.
func (d *YAMLDecoder) Decode(ctx context.Context, content []byte) (map[string]Value, error) {
	// Check for context cancellation
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrYAMLDecodingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	texts := make(map[string]Value, len(data))
	for key, raw := range data {
		value, err := newValue(raw)
		if err != nil {
			return nil, errors.Join(ErrFailedToParseYAML, err)
		}
		texts[key] = value
	}

	return texts, nil
}

// SupportsFileExtension checks if the decoder supports the given file extension.
func (d *YAMLDecoder) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}
