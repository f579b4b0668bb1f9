package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all client configuration, populated from the environment.
type Config struct {
	// APIBaseURL is the backend API root, including the version prefix.
	APIBaseURL string `env:"MEDI_API_URL" envDefault:"http://localhost:8000/api/v1"`

	// TokenFile is where the access/refresh token pair is persisted.
	// Empty means <user config dir>/medi/tokens.json.
	TokenFile string `env:"MEDI_TOKEN_FILE"`

	HTTPTimeout    time.Duration `env:"MEDI_HTTP_TIMEOUT" envDefault:"15s"`
	HTTPMaxRetries int           `env:"MEDI_HTTP_MAX_RETRIES" envDefault:"2"`

	BreakerEnabled bool `env:"MEDI_BREAKER_ENABLED" envDefault:"true"`

	LogLevel  string `env:"MEDI_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"MEDI_LOG_FORMAT" envDefault:"text"`
}

// Load parses configuration from environment variables and resolves the
// default token file location.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.TokenFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve user config dir: %w", err)
		}
		cfg.TokenFile = filepath.Join(dir, "medi", "tokens.json")
	}

	return cfg, nil
}
