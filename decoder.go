package languages

import (
	"context"
	"fmt"
	"strings"
)

// Format selects which decoder Load uses and which file extension it expects.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Ext returns the file extension for the format, without the leading dot.
func (f Format) Ext() string {
	return string(f)
}

// Valid reports whether the format has a decoder.
func (f Format) Valid() bool {
	switch f {
	case FormatJSON, FormatTOML, FormatYAML:
		return true
	default:
		return false
	}
}

// Decoder converts raw language file content into a mapping of text keys to
// Values. Decoders for different formats are interchangeable; Load only talks
// to this interface.
type Decoder interface {
	// Decode parses the content and returns the key to Value mapping.
	Decode(ctx context.Context, content []byte) (map[string]Value, error)

	// SupportsFileExtension checks if the decoder handles the given file
	// extension. A leading dot is accepted (both "json" and ".json" match).
	SupportsFileExtension(ext string) bool
}

// NewDecoder returns the decoder for the given format.
func NewDecoder(format Format) (Decoder, error) {
	switch format {
	case FormatJSON:
		return NewJSONDecoder(), nil
	case FormatTOML:
		return NewTOMLDecoder(), nil
	case FormatYAML:
		return NewYAMLDecoder(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// NewDecoderForFile returns a decoder based on the file extension,
// or nil when no decoder supports it.
func NewDecoderForFile(filename string) Decoder {
	ext := fileExtension(filename)

	switch strings.ToLower(ext) {
	case "json":
		return NewJSONDecoder()
	case "toml":
		return NewTOMLDecoder()
	case "yaml", "yml":
		return NewYAMLDecoder()
	default:
		return nil
	}
}

// fileExtension extracts the extension from a filename.
func fileExtension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		return filename[idx+1:]
	}
	return ""
}
