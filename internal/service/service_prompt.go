package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-prompt-tracker/internal/logger"
	"github.com/MKhiriev/go-prompt-tracker/internal/store"
	"github.com/MKhiriev/go-prompt-tracker/internal/validators"
	"github.com/MKhiriev/go-prompt-tracker/models"
)

type promptService struct {
	promptRepository store.PromptRepository
	enrichment       EnrichmentService
	validator        validators.Validator
	now              func() time.Time

	logger *logger.Logger
}

func NewPromptService(promptRepository store.PromptRepository, enrichment EnrichmentService, logger *logger.Logger) PromptService {
	return &promptService{
		promptRepository: promptRepository,
		enrichment:       enrichment,
		validator:        validators.NewPromptValidator(),
		now:              time.Now,
		logger:           logger,
	}
}

// CreatePrompt validates the text and any supplied source, stamps owner and
// creation time, enriches the prompt and stores it. Client-supplied ID, UserID
// and CreatedAt are ignored.
func (p *promptService) CreatePrompt(ctx context.Context, username string, prompt models.Prompt) (models.Prompt, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, prompt, validators.FieldInputText, validators.FieldSource); err != nil {
		log.Debug().Err(err).Str("func", "promptService.CreatePrompt").Msg("invalid prompt")
		return models.Prompt{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	prompt.ID = 0
	prompt.UserID = username
	prompt.InputText = strings.TrimSpace(prompt.InputText)
	prompt.CreatedAt = p.now().UTC()
	prompt = p.enrichment.Enrich(prompt)

	saved, err := p.promptRepository.SavePrompt(ctx, prompt)
	if err != nil {
		log.Err(err).Str("func", "promptService.CreatePrompt").Str("user_id", username).Msg("failed to save prompt")
		return models.Prompt{}, fmt.Errorf("failed to save prompt: %w", err)
	}

	return saved, nil
}

// CreatePromptsBatch creates every prompt independently. A failing item is
// reported in its result and never stops the rest of the batch.
func (p *promptService) CreatePromptsBatch(ctx context.Context, username string, prompts []models.Prompt) ([]models.BatchResult, error) {
	results := make([]models.BatchResult, 0, len(prompts))

	for _, prompt := range prompts {
		result := models.BatchResult{Prompt: prompt.InputText}

		saved, err := p.CreatePrompt(ctx, username, prompt)
		if err != nil {
			result.Error = batchErrorMessage(err)
		} else {
			result.Success = true
			result.ID = saved.ID
			result.Category = saved.Category
			result.Source = saved.Source
		}

		results = append(results, result)
	}

	return results, nil
}

func (p *promptService) ListUserPrompts(ctx context.Context, username string) ([]models.Prompt, error) {
	prompts, err := p.promptRepository.GetUserPrompts(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user prompts: %w", err)
	}
	return prompts, nil
}

func (p *promptService) DeletePrompt(ctx context.Context, id int64) error {
	err := p.promptRepository.DeletePrompt(ctx, id)
	if errors.Is(err, store.ErrPromptNotFound) {
		return ErrPromptNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete prompt: %w", err)
	}
	return nil
}

// batchErrorMessage exposes validation reasons and hides storage details.
func batchErrorMessage(err error) string {
	if errors.Is(err, ErrValidation) {
		return strings.TrimPrefix(err.Error(), ErrValidation.Error()+": ")
	}
	return "failed to save prompt"
}
