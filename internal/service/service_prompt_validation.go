package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-prompt-tracker/internal/validators"
	"github.com/MKhiriev/go-prompt-tracker/models"
)

// PromptValidationService checks request-level input before handing the
// call to the wrapped PromptService. Every rejection wraps ErrValidation.
type PromptValidationService struct {
	inner     PromptService
	validator validators.Validator
}

func NewPromptValidationService() PromptServiceWrapper {
	return &PromptValidationService{
		validator: validators.NewPromptValidator(),
	}
}

func (v *PromptValidationService) CreatePrompt(ctx context.Context, username string, prompt models.Prompt) (models.Prompt, error) {
	if err := v.validateOwner(ctx, username); err != nil {
		return models.Prompt{}, err
	}

	return v.inner.CreatePrompt(ctx, username, prompt)
}

func (v *PromptValidationService) CreatePromptsBatch(ctx context.Context, username string, prompts []models.Prompt) ([]models.BatchResult, error) {
	if err := v.validateOwner(ctx, username); err != nil {
		return nil, err
	}

	// items are checked one by one by the inner service so that a bad item
	// only fails its own result
	if err := v.validator.Validate(ctx, prompts, validators.FieldPrompts); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.CreatePromptsBatch(ctx, username, prompts)
}

func (v *PromptValidationService) ListUserPrompts(ctx context.Context, username string) ([]models.Prompt, error) {
	if err := v.validateOwner(ctx, username); err != nil {
		return nil, err
	}

	return v.inner.ListUserPrompts(ctx, username)
}

func (v *PromptValidationService) DeletePrompt(ctx context.Context, id int64) error {
	if err := v.validator.Validate(ctx, models.Prompt{ID: id}, validators.FieldPromptID); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.DeletePrompt(ctx, id)
}

func (v *PromptValidationService) Wrap(wrapper PromptService) PromptService {
	v.inner = wrapper
	return v
}

func (v *PromptValidationService) validateOwner(ctx context.Context, username string) error {
	if err := v.validator.Validate(ctx, models.Prompt{UserID: username}, validators.FieldOwner); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}
