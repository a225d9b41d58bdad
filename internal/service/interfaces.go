package service

import (
	"context"

	"github.com/MKhiriev/go-prompt-tracker/models"
)

// PromptServiceWrapper is left out of the mocks: it refers back to this
// package, and the mock package is imported by this package's tests.
//go:generate mockgen -destination=../mock/service_mock.go -package=mock github.com/MKhiriev/go-prompt-tracker/internal/service AuthService,EnrichmentService,PromptService,AppInfoService

// AuthService registers users, authenticates them and issues and verifies
// signed tokens.
type AuthService interface {
	// Register creates an account. Role defaults to models.RoleUser.
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Authenticate checks the credentials and mints a token. An unknown user
	// and a wrong password both yield ErrInvalidCredentials.
	Authenticate(ctx context.Context, credentials models.Credentials) (models.Token, error)

	// VerifyToken validates signature, issuer, audience and expiry and
	// returns the token claims. Never touches storage.
	VerifyToken(ctx context.Context, tokenString string) (models.Claims, error)
}

// EnrichmentService derives a category and source label from prompt text.
// Implementations are pure and safe for concurrent use.
type EnrichmentService interface {
	Classify(inputText string) (category, source string)

	// Enrich recomputes Category and fills Source only when it is empty.
	Enrich(prompt models.Prompt) models.Prompt
}

// PromptService stores, lists and deletes user prompts.
type PromptService interface {
	CreatePrompt(ctx context.Context, username string, prompt models.Prompt) (models.Prompt, error)
	CreatePromptsBatch(ctx context.Context, username string, prompts []models.Prompt) ([]models.BatchResult, error)
	ListUserPrompts(ctx context.Context, username string) ([]models.Prompt, error)
	DeletePrompt(ctx context.Context, id int64) error
}

// AppInfoService exposes build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.VersionResponse
}

// PromptServiceWrapper defines middleware composition for PromptService.
// Implementations wrap an existing PromptService to add behavior such as
// logging or validating.
type PromptServiceWrapper interface {
	Wrap(PromptService) PromptService // returns a decorated PromptService applying additional behavior
}
