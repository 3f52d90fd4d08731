// Package config loads game settings from an optional YAML file with
// HANGMAN_* environment variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Defaults applied when neither file nor environment sets a value.
const (
	DefaultMaxAttempts = 6
	DefaultLogLevel    = "info"
)

// Config holds the runtime settings for a game session.
type Config struct {
	MaxAttempts int    `yaml:"max-attempts" env:"HANGMAN_MAX_ATTEMPTS" env-default:"6"`
	LogLevel    string `yaml:"log-level" env:"HANGMAN_LOG_LEVEL" env-default:"info"`
	NoColor     bool   `yaml:"no-color" env:"HANGMAN_NO_COLOR" env-default:"false"`
}

// ValidationError reports an invalid configuration value.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Load reads configuration. With a path it requires the file to exist
// and parse; without one it reads environment variables over defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	} else {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that all config values are usable.
func Validate(cfg *Config) error {
	if cfg.MaxAttempts <= 0 {
		return ValidationError{Field: "max-attempts", Message: "must be positive"}
	}
	if cfg.MaxAttempts > 25 {
		return ValidationError{Field: "max-attempts", Message: "must be at most 25"}
	}
	return nil
}
