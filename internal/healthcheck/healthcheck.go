// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package healthcheck probes a running e-diary server through GET /health.
//
// Container runtimes invoke it via cmd/healthcheck from inside the same
// container, so the probe always targets loopback even when the server binds
// every interface.
package healthcheck

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/secure-e-diary/internal/utils"
	"github.com/MKhiriev/secure-e-diary/models"
	"github.com/caarlos0/env/v11"
)

const healthPath = "/health"

// ErrUnhealthy is returned when the server answered but did not report OK.
var ErrUnhealthy = errors.New("server is unhealthy")

// Config is read from the same environment variables as the server.
type Config struct {
	Host    string        `env:"HOST" envDefault:"127.0.0.1"`
	Port    int           `env:"PORT" envDefault:"5000"`
	Timeout time.Duration `env:"HEALTHCHECK_TIMEOUT" envDefault:"2s"`
}

// ConfigFromEnv parses [Config] from the process environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing healthcheck env: %w", err)
	}
	return cfg, nil
}

// BaseURL returns the loopback URL of the server described by cfg.
func (c Config) BaseURL() string {
	return "http://" + NormalizeAddress(c.Host, c.Port)
}

// NormalizeAddress turns a bind address into one the probe can dial: an
// empty or wildcard host becomes 127.0.0.1.
func NormalizeAddress(host string, port int) string {
	switch host {
	case "", "0.0.0.0", "::", "[::]":
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// Probe asks the server for its health and succeeds only on 200 with
// status "OK".
func Probe(ctx context.Context, client *utils.HTTPClient) error {
	var health models.HealthResponse

	resp, err := client.R().
		SetContext(ctx).
		SetResult(&health).
		Get(healthPath)
	if err != nil {
		return fmt.Errorf("error requesting %s: %w", healthPath, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnhealthy, resp.StatusCode())
	}
	if health.Status != "OK" {
		return fmt.Errorf("%w: reported status %q", ErrUnhealthy, health.Status)
	}

	return nil
}
