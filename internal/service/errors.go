package service

import "errors"

var (
	// ErrValidation marks caller-fixable input problems. The concrete reason
	// from package validators is wrapped alongside it.
	ErrValidation = errors.New("validation error")

	ErrDuplicateUser      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")

	// ErrSigningKeyMissing is a configuration defect: no token is minted or
	// accepted while it persists.
	ErrSigningKeyMissing = errors.New("token signing key is not configured")

	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrPromptNotFound = errors.New("prompt not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
