package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// SyncConfig configures the remote leaderboard table.
// Sync is disabled when URL or Key is empty.
type SyncConfig struct {
	URL     string        `env:"PLAYZONE_SYNC_URL"`
	Key     string        `env:"PLAYZONE_SYNC_KEY"`
	Table   string        `env:"PLAYZONE_SYNC_TABLE" envDefault:"leaderboard"`
	Timeout time.Duration `env:"PLAYZONE_SYNC_TIMEOUT" envDefault:"5s"`
}

// Enabled reports whether a remote store is configured.
func (c SyncConfig) Enabled() bool {
	return c.URL != "" && c.Key != ""
}

// TelemetryConfig configures OpenTelemetry tracing.
type TelemetryConfig struct {
	Enabled  bool   `env:"PLAYZONE_OTEL_ENABLED" envDefault:"false"`
	Endpoint string `env:"PLAYZONE_OTEL_ENDPOINT"`
	Insecure bool   `env:"PLAYZONE_OTEL_INSECURE" envDefault:"true"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadSyncConfig reads SyncConfig from the environment.
func LoadSyncConfig() (SyncConfig, error) {
	var cfg SyncConfig
	err := ParseEnv(&cfg)
	return cfg, err
}

// LoadTelemetryConfig reads TelemetryConfig from the environment.
func LoadTelemetryConfig() (TelemetryConfig, error) {
	var cfg TelemetryConfig
	err := ParseEnv(&cfg)
	return cfg, err
}
