// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds settings shared by every quizline command. Command-line flags
// take precedence over these values.
type Config struct {
	// DBPath is the SQLite file. Empty means store.DefaultDBPath.
	DBPath string `env:"QUIZLINE_DB"`

	// Addr is the listen address for the web server.
	Addr string `env:"QUIZLINE_ADDR" envDefault:"127.0.0.1:8080"`

	// UserID stands in for the signed-in user; there is no authentication.
	UserID int64 `env:"QUIZLINE_USER_ID" envDefault:"1"`
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.UserID <= 0 {
		return Config{}, fmt.Errorf("QUIZLINE_USER_ID must be positive, got %d", cfg.UserID)
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
