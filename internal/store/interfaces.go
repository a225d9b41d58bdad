package store

import (
	"context"

	"github.com/MKhiriev/go-prompt-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with server-assigned
	// fields. Returns ErrLoginAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername looks a user up by exact, case-sensitive username.
	// Returns ErrNoUserWasFound when there is no such user.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// PromptRepository persists prompts.
type PromptRepository interface {
	// SavePrompt inserts a prompt and returns it with its assigned ID.
	SavePrompt(ctx context.Context, prompt models.Prompt) (models.Prompt, error)

	// GetUserPrompts returns the prompts owned by userID, newest first.
	GetUserPrompts(ctx context.Context, userID string) ([]models.Prompt, error)

	// DeletePrompt removes the prompt with the given id.
	// Returns ErrPromptNotFound when nothing was deleted.
	DeletePrompt(ctx context.Context, id int64) error
}

// ErrorClassificator turns driver-specific errors into storage decisions.
//
// Repositories never retry: a failed query is returned to the caller at once.
// Classify only labels the failure in the repository error log, so operators
// can tell a transient outage from a bad query.
type ErrorClassificator interface {
	// Classify reports whether the failed operation could succeed if the
	// caller tried again. It is informational and drives no retry.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err comes from a unique constraint.
	IsUniqueViolation(err error) bool
}
