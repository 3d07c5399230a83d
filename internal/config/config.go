// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"os"
	"strconv"
	"time"
)

// Default values applied before any other configuration source.
const (
	DefaultHost           = "0.0.0.0"
	DefaultPort           = 5000
	DefaultClientURL      = "*"
	DefaultRequestTimeout = 30 * time.Second
	DefaultVersion        = "1.0.0"
	DefaultLogLevel       = "debug"
)

// StructuredConfig is the top-level configuration container for the e-diary
// server. It is populated by merging defaults, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the reported version
	// and the log level.
	App App `envPrefix:"APP_"`

	// Server holds the listen address, CORS origin and timeout settings.
	// Its variables carry no prefix so that hosting platforms can inject
	// PORT directly.
	Server Server

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and CORS settings for the inbound HTTP transport.
type Server struct {
	// Host is the interface the HTTP server binds to.
	// Env: HOST
	Host string `env:"HOST"`

	// Port is the TCP port the HTTP server listens on.
	// Env: PORT
	Port int `env:"PORT"`

	// ClientURL is the origin allowed to make cross-origin requests with
	// credentials. "*" allows every origin.
	// Env: CLIENT_URL
	ClientURL string `env:"CLIENT_URL"`

	// RequestTimeout bounds reading and writing a single request
	// (e.g. "30s", "1m").
	// Env: REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// HTTPAddress returns the "host:port" listen address.
func (s Server) HTTPAddress() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// defaultConfig returns the configuration used when no source overrides a
// field.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  DefaultVersion,
			LogLevel: DefaultLogLevel,
		},
		Server: Server{
			Host:           DefaultHost,
			Port:           DefaultPort,
			ClientURL:      DefaultClientURL,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags (os.Args)
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
