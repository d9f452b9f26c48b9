// Package config loads bibleio settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds process-wide settings. Command-line flags override these values.
type Config struct {
	LogLevel       string        `env:"BIBLEIO_LOG_LEVEL"       envDefault:"info"`
	LogFormat      string        `env:"BIBLEIO_LOG_FORMAT"      envDefault:"text"`
	Addr           string        `env:"BIBLEIO_ADDR"            envDefault:"127.0.0.1:8080"`
	Corpora        []string      `env:"BIBLEIO_CORPORA"         envSeparator:","`
	ReadTimeout    time.Duration `env:"BIBLEIO_READ_TIMEOUT"    envDefault:"10s"`
	AllowedOrigins []string      `env:"BIBLEIO_ALLOWED_ORIGINS" envSeparator:","`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the configuration described by the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.ReadTimeout <= 0 {
		return Config{}, fmt.Errorf("BIBLEIO_READ_TIMEOUT must be positive, got %v", cfg.ReadTimeout)
	}
	return cfg, nil
}
