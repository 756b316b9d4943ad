package languages

import "errors"

// Package errors are sentinel values so callers can branch with errors.Is.
// Load-time errors are fatal to the whole Load call; lookup-time errors leave
// the already-built Languages untouched.
var (
	// Config building
	ErrInvalidLanguageCode = errors.New("invalid language code")
	ErrDuplicateLanguage   = errors.New("language already added to configuration")
	ErrDirectoryNotFound   = errors.New("languages directory not found")
	ErrNotADirectory       = errors.New("languages path is not a directory")
	ErrUnsupportedFormat   = errors.New("unsupported languages file format")
	ErrFailedToParseEnv    = errors.New("failed to parse environment configuration")

	// Loading
	ErrFileNotFound         = errors.New("language file not found")
	ErrFailedToReadFile     = errors.New("failed to read language file")
	ErrLoadingFileCancelled = errors.New("loading language file cancelled")

	// Decoding
	ErrFailedToParseJSON     = errors.New("failed to parse JSON content")
	ErrFailedToParseTOML     = errors.New("failed to parse TOML content")
	ErrFailedToParseYAML     = errors.New("failed to parse YAML content")
	ErrJSONDecodingCancelled = errors.New("json decoding cancelled")
	ErrTOMLDecodingCancelled = errors.New("toml decoding cancelled")
	ErrYAMLDecodingCancelled = errors.New("yaml decoding cancelled")
	ErrUnsupportedValue      = errors.New("value cannot be represented as a language text value")

	// Lookups
	ErrLanguageNotFound = errors.New("language not loaded")
	ErrTextNotFound     = errors.New("text key not found")
	ErrTypeMismatch     = errors.New("value type mismatch")

	// Encoding
	ErrFailedToMarshalJSON = errors.New("failed to marshal texts to JSON")
)
