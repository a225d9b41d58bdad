// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the prompt tracker REST API.
//
// [ServerAdapter] hides the transport from callers. Non-2xx answers are turned
// into the sentinel errors of errors.go so callers can use [errors.Is]
// (for example [ErrConflict] for a taken username, [ErrUnauthorized] for bad
// credentials or an expired token).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-prompt-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to a prompt tracker server on behalf of one user.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated calls.
	SetToken(token string)

	// Token returns the stored bearer token, or "" before login.
	Token() string

	Register(ctx context.Context, credentials models.Credentials) (models.RegisterResponse, error)

	// Login authenticates and keeps the returned token for later calls.
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResult, error)

	CreatePrompt(ctx context.Context, prompt models.Prompt) (models.Prompt, error)

	// CreatePromptsBatch submits several prompts at once. Per-item failures
	// come back in the results, not as an error.
	CreatePromptsBatch(ctx context.Context, prompts []models.Prompt) ([]models.BatchResult, error)

	ListPrompts(ctx context.Context) ([]models.Prompt, error)

	// DeletePrompt needs a token issued to an Admin.
	DeletePrompt(ctx context.Context, id int64) error

	Version(ctx context.Context) (models.VersionResponse, error)
}
