package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete.
var (
	// ErrInvalidStorageConfigs indicates missing storage settings
	// (for example, an empty users file path or vault directory).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates missing application-level settings
	// (for example, an empty audit log path).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
