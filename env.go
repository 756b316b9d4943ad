package languages

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envConfig maps environment variables onto configuration fields.
type envConfig struct {
	Directory string   `env:"LANGUAGES_DIR" envDefault:"languages"`
	Languages []string `env:"LANGUAGES_LIST" envSeparator:","`
	Format    string   `env:"LANGUAGES_FORMAT" envDefault:"json"`
}

var defaultEnvLoaded sync.Once

// ConfigFromEnv builds a Config from the LANGUAGES_DIR, LANGUAGES_LIST and
// LANGUAGES_FORMAT environment variables. A .env file in the working
// directory is loaded first if present; missing files are not an error.
// The directory, format and every language code go through the same
// validation as the programmatic setters.
func ConfigFromEnv() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file might not exist and that's ok.
		_ = godotenv.Load()
	})

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return Config{}, errors.Join(ErrFailedToParseEnv, err)
	}

	cfg := Default()
	if err := cfg.SetDirectory(ec.Directory); err != nil {
		return Config{}, err
	}
	if err := cfg.SetFormat(Format(ec.Format)); err != nil {
		return Config{}, err
	}
	for _, code := range ec.Languages {
		if err := cfg.AddLanguage(code); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}
