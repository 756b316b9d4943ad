package languages

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
)

// LanguageTexts is the full set of key to Value entries for one language,
// loaded from one file. It is immutable after load.
type LanguageTexts struct {
	language string
	texts    map[string]Value
}

// NewLanguageTexts creates a LanguageTexts bundle from an already-decoded
// mapping. The map is copied so the bundle stays immutable.
func NewLanguageTexts(language string, texts map[string]Value) *LanguageTexts {
	return &LanguageTexts{
		language: language,
		texts:    maps.Clone(texts),
	}
}

// Language returns the language code the texts belong to.
func (lt *LanguageTexts) Language() string {
	return lt.language
}

// TryGetText returns the Value stored under the key. Lookups are
// case-sensitive exact matches; a missing key returns ErrTextNotFound.
func (lt *LanguageTexts) TryGetText(key string) (Value, error) {
	value, ok := lt.texts[key]
	if !ok {
		return Value{}, fmt.Errorf("%w: %q in language %q", ErrTextNotFound, key, lt.language)
	}
	return value, nil
}

// Keys returns the text keys of the bundle, sorted.
func (lt *LanguageTexts) Keys() []string {
	return slices.Sorted(maps.Keys(lt.texts))
}

// ToJSON re-encodes the bundle as a JSON document, e.g. for client-side
// consumption.
func (lt *LanguageTexts) ToJSON() ([]byte, error) {
	data, err := json.Marshal(lt.texts)
	if err != nil {
		return nil, errors.Join(ErrFailedToMarshalJSON, err)
	}
	return data, nil
}

// Languages holds the loaded text bundles indexed by language code.
// It is built once by Load and read-only thereafter, so concurrent readers
// are safe without locking.
type Languages struct {
	langs map[string]*LanguageTexts
}

// TryGetLanguage returns the texts of a loaded language, or
// ErrLanguageNotFound when the code was never loaded. No fallback to a
// default language is performed; that policy is left to the caller.
func (l *Languages) TryGetLanguage(code string) (*LanguageTexts, error) {
	texts, ok := l.langs[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrLanguageNotFound, code)
	}
	return texts, nil
}

// TryGetTextFromLanguage looks up a text key in a loaded language in one
// call. It fails with ErrLanguageNotFound or ErrTextNotFound.
func (l *Languages) TryGetTextFromLanguage(code, key string) (Value, error) {
	texts, err := l.TryGetLanguage(code)
	if err != nil {
		return Value{}, err
	}
	return texts.TryGetText(key)
}

// Codes returns the loaded language codes, sorted.
func (l *Languages) Codes() []string {
	return slices.Sorted(maps.Keys(l.langs))
}
