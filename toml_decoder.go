package languages

import (
	"context"
	"errors"
	"strings"

	"github.com/BurntSushi/toml"
)

// TOMLDecoder implements the Decoder interface for TOML files.
type TOMLDecoder struct{}

// NewTOMLDecoder creates a new TOMLDecoder instance.
func NewTOMLDecoder() *TOMLDecoder {
	return &TOMLDecoder{}
}

// Decode parses TOML content and returns a map of text Values.
// Parse failures keep the underlying toml.ParseError so callers still see
// the line and position diagnostics.
func (d *TOMLDecoder) Decode(ctx context.Context, content []byte) (map[string]Value, error) {
	// Check for context cancellation
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrTOMLDecodingCancelled, err)
	}

	var data map[string]any
	if err := toml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseTOML, err)
	}

	texts := make(map[string]Value, len(data))
	for key, raw := range data {
		value, err := newValue(raw)
		if err != nil {
			return nil, errors.Join(ErrFailedToParseTOML, err)
		}
		texts[key] = value
	}

	return texts, nil
}

// SupportsFileExtension checks if the decoder supports the given file extension.
func (d *TOMLDecoder) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "toml")
}
