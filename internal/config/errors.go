package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings (for example,
	// a port outside 1..65535, an empty CORS origin or a non-positive timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty version).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
