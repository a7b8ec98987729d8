// Package config loads runtime settings for logging and tracing from the
// environment. Nothing here changes the rules of the game.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

const (
	// AppName names the state directory and the default tracing dataset.
	AppName = "guessnumber"

	honeycombEndpoint = "https://api.honeycomb.io"
)

// Config holds all environment-driven settings.
type Config struct {
	LogLevel  slog.Level `env:"GUESSNUMBER_LOG_LEVEL"  envDefault:"info"`
	LogFile   string     `env:"GUESSNUMBER_LOG_FILE"`
	LogStderr bool       `env:"GUESSNUMBER_LOG_STDERR" envDefault:"false"`

	OTelEnabled  bool   `env:"GUESSNUMBER_OTEL_ENABLED"  envDefault:"true"`
	OTelEndpoint string `env:"GUESSNUMBER_OTEL_ENDPOINT"`

	HoneycombAPIKey  string `env:"HONEYCOMB_GUESSNUMBER_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_GUESSNUMBER_DATASET" envDefault:"guessnumber"`
}

// Load parses the environment into a Config and fills derived defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if cfg.LogFile == "" {
		path, err := DefaultLogFile()
		if err != nil {
			// No home directory; logging falls back to stderr or nothing.
			return cfg, nil
		}
		cfg.LogFile = path
	}
	return cfg, nil
}

// DefaultLogFile returns $XDG_STATE_HOME/guessnumber/app.log, falling back to
// ~/.local/state when XDG_STATE_HOME is unset.
func DefaultLogFile() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}
	return filepath.Join(stateDir, AppName, "app.log"), nil
}

// TelemetryEnabled reports whether traces should be exported.
// Tracing is opt-in: it needs an endpoint or a Honeycomb key.
func (c Config) TelemetryEnabled() bool {
	return c.OTelEnabled && c.OTLPEndpoint() != ""
}

// OTLPEndpoint returns the explicit endpoint, or Honeycomb's when only an API
// key is configured.
func (c Config) OTLPEndpoint() string {
	if c.OTelEndpoint != "" {
		return c.OTelEndpoint
	}
	if c.HoneycombAPIKey != "" {
		return honeycombEndpoint
	}
	return ""
}

// OTLPHeaders returns exporter headers. Empty without a Honeycomb key.
func (c Config) OTLPHeaders() map[string]string {
	if c.HoneycombAPIKey == "" {
		return nil
	}
	dataset := c.HoneycombDataset
	if dataset == "" {
		dataset = AppName
	}
	return map[string]string{
		"x-honeycomb-team":    c.HoneycombAPIKey,
		"x-honeycomb-dataset": dataset,
	}
}
