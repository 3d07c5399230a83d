// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

const maxPort = 65535

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// sentinel errors from errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Port < 1 || cfg.Server.Port > maxPort {
		return fmt.Errorf("%w: port %d is out of range", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	if cfg.Server.ClientURL == "" {
		return fmt.Errorf("%w: empty client url", ErrInvalidServerConfigs)
	}

	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	if cfg.App.Version == "" {
		return fmt.Errorf("%w: empty version", ErrInvalidAppConfigs)
	}

	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
		}
	}

	return nil
}
