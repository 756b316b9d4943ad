package languages

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultDirectory is the conventional directory language files live in.
const DefaultDirectory = "languages"

// Config describes where language files live, which language codes to load
// and which file format to expect. It is built in memory; no file is read
// until Load is called.
type Config struct {
	dir       string
	languages []string
	format    Format
}

// Default returns a Config pointing at the conventional "languages" directory
// with an empty language list and the JSON format.
func Default() Config {
	return Config{
		dir:    DefaultDirectory,
		format: FormatJSON,
	}
}

// New creates a Config for the given directory and language codes.
// The directory must exist; the codes are validated and must be unique.
func New(dir string, langs ...string) (Config, error) {
	cfg := Default()
	if err := cfg.SetDirectory(dir); err != nil {
		return Config{}, err
	}
	for _, code := range langs {
		if err := cfg.AddLanguage(code); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// AddLanguage validates the code as a BCP 47 language tag and appends it to
// the configuration. Re-adding a code that is already present returns
// ErrDuplicateLanguage.
func (c *Config) AddLanguage(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return fmt.Errorf("%w: empty code", ErrInvalidLanguageCode)
	}
	if _, err := language.Parse(code); err != nil {
		return errors.Join(fmt.Errorf("%w: %q", ErrInvalidLanguageCode, code), err)
	}
	if slices.Contains(c.languages, code) {
		return fmt.Errorf("%w: %q", ErrDuplicateLanguage, code)
	}

	c.languages = append(c.languages, code)
	return nil
}

// SetDirectory changes the languages directory. The path must exist and be a
// directory.
func (c *Config) SetDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return errors.Join(fmt.Errorf("%w: %q", ErrDirectoryNotFound, dir), err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %q", ErrNotADirectory, dir)
	}

	c.dir = dir
	return nil
}

// SetFormat selects the file format Load expects.
func (c *Config) SetFormat(format Format) error {
	if !format.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	c.format = format
	return nil
}

// Directory returns the configured languages directory.
func (c Config) Directory() string {
	return c.dir
}

// Languages returns the configured language codes in insertion order.
func (c Config) Languages() []string {
	return slices.Clone(c.languages)
}

// Format returns the configured file format.
func (c Config) Format() Format {
	return c.format
}
