package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrSigningKeyMissing indicates that no token signing key was configured.
	// Token issuance fails closed, so the server must not start without it.
	ErrSigningKeyMissing = errors.New("token signing key is missing")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, empty issuer/audience or out of range hash cost).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid transport settings
	// (for example, neither HTTP nor gRPC address set).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
