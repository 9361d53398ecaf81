package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates missing security settings (token sign
	// key or vault passphrase).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN or unsupported driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates that no transport address is set.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidFlags wraps command-line parsing failures.
	ErrInvalidFlags = errors.New("invalid command-line flags")
)
