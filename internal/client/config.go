package client

import (
	"fmt"

	"github.com/MKhiriev/secure-e-diary/internal/adapter"
	"github.com/caarlos0/env/v11"
)

// Config is read from DIARY_* environment variables.
type Config struct {
	// Adapter holds DIARY_SERVER_URL and DIARY_REQUEST_TIMEOUT.
	Adapter adapter.Config `envPrefix:"DIARY_"`

	// LogLevel is a zerolog level name. Client logs go to stderr.
	LogLevel string `env:"DIARY_LOG_LEVEL" envDefault:"warn"`
}

// ConfigFromEnv parses [Config] from the process environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing client env: %w", err)
	}
	return cfg, nil
}
