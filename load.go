package languages

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// Load reads, decodes and indexes the language file of every configured
// language code, in insertion order. File paths resolve to
// <directory>/<code>.<ext> where ext matches the configured format.
// Any missing or malformed file fails the whole call; no partial Languages
// is ever returned. A missing file is a configuration error, so nothing is
// retried.
func Load(ctx context.Context, cfg Config) (*Languages, error) {
	decoder, err := NewDecoder(cfg.Format())
	if err != nil {
		return nil, err
	}

	langs := make(map[string]*LanguageTexts, len(cfg.languages))
	for _, code := range cfg.languages {
		filePath := filepath.Join(cfg.dir, code+"."+cfg.Format().Ext())

		content, err := readFile(ctx, filePath)
		if err != nil {
			return nil, err
		}

		texts, err := decoder.Decode(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("decoding %q: %w", filePath, err)
		}

		langs[code] = NewLanguageTexts(code, texts)
	}

	return &Languages{langs: langs}, nil
}

// LoadFS is Load over an fs.FS, typically an embedded filesystem holding the
// language files. The configured directory is resolved inside fsys; all other
// semantics match Load.
func LoadFS(ctx context.Context, cfg Config, fsys fs.FS) (*Languages, error) {
	decoder, err := NewDecoder(cfg.Format())
	if err != nil {
		return nil, err
	}

	langs := make(map[string]*LanguageTexts, len(cfg.languages))
	for _, code := range cfg.languages {
		// Check context before processing each file
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingFileCancelled, err)
		}

		filePath := path.Join(cfg.dir, code+"."+cfg.Format().Ext())

		content, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return nil, joinReadError(filePath, err)
		}

		texts, err := decoder.Decode(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("decoding %q: %w", filePath, err)
		}

		langs[code] = NewLanguageTexts(code, texts)
	}

	return &Languages{langs: langs}, nil
}

// readFile reads one language file while respecting context cancellation.
func readFile(ctx context.Context, filePath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingFileCancelled, err)
	}

	done := make(chan struct{})
	var content []byte
	var readErr error

	// Start file reading in a goroutine so a cancelled context does not
	// keep the caller blocked on a slow filesystem.
	go func() {
		content, readErr = os.ReadFile(filePath)
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrLoadingFileCancelled, ctx.Err())
	case <-done:
	}

	if readErr != nil {
		return nil, joinReadError(filePath, readErr)
	}

	return content, nil
}

// joinReadError distinguishes a missing file from other I/O faults.
func joinReadError(filePath string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return errors.Join(fmt.Errorf("%w: %q", ErrFileNotFound, filePath), err)
	}
	return errors.Join(fmt.Errorf("%w: %q", ErrFailedToReadFile, filePath), err)
}
