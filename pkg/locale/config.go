package locale

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config selects the locale used for culture-sensitive operations.
type Config struct {
	Tag string `env:"EXTENSIONS_LOCALE" envDefault:"und"`
}

var defaultEnvLoaded sync.Once

// LoadConfig reads Config from the environment, loading the default .env file
// once per process if it exists.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}

	return cfg, nil
}

// Locale resolves the configured tag.
func (c Config) Locale() (Locale, error) {
	return Parse(c.Tag)
}

// FromEnv returns the locale configured through EXTENSIONS_LOCALE.
func FromEnv() (Locale, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return Locale{}, err
	}
	return cfg.Locale()
}
