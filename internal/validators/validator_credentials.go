// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-prompt-tracker/models"
)

// CredentialsValidator implements the Validator interface for
// models.Credentials, accepting both value and pointer forms.
type CredentialsValidator struct {
}

// NewCredentialsValidator constructs a new CredentialsValidator
// and returns it as the Validator interface.
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate checks the requested fields of a credentials pair in the order given.
// With no fields, username and password presence are checked, which is what
// login needs. Registration additionally asks for FieldUsernameLength,
// FieldPasswordStrength and FieldRole.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCredentials(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(ctx context.Context, credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(credentials.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldUsernameLength:
			if utf8.RuneCountInString(credentials.Username) > MaxUsernameLength {
				return ErrUsernameTooLong
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
		case FieldPasswordStrength:
			if utf8.RuneCountInString(credentials.Password) < MinPasswordLength {
				return ErrWeakPassword
			}
			if len(credentials.Password) > MaxPasswordBytes {
				return ErrPasswordTooLong
			}
		case FieldRole:
			if credentials.Role != "" && !credentials.Role.IsValid() {
				return ErrInvalidRole
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
