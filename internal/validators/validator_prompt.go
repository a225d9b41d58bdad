package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-prompt-tracker/models"
)

// PromptValidator implements the Validator interface for models.Prompt
// and for prompt batches ([]models.Prompt).
type PromptValidator struct {
}

// NewPromptValidator constructs a new PromptValidator
// and returns it as the Validator interface.
func NewPromptValidator() Validator {
	return &PromptValidator{}
}

// Validate dispatches validation based on the dynamic type of obj.
//
// Supported types:
//   - models.Prompt / *models.Prompt (default field: FieldInputText)
//   - []models.Prompt (default field: FieldPrompts)
func (v *PromptValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Prompt:
		return v.validatePrompt(ctx, value, fields...)
	case *models.Prompt:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validatePrompt(ctx, *value, fields...)
	case []models.Prompt:
		return v.validateBatch(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *PromptValidator) validatePrompt(ctx context.Context, prompt models.Prompt, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldInputText}
	}

	for _, f := range fields {
		switch f {
		case FieldInputText:
			text := strings.TrimSpace(prompt.InputText)
			if text == "" {
				return ErrEmptyInputText
			}
			if n := utf8.RuneCountInString(text); n < MinInputTextLength || n > MaxInputTextLength {
				return ErrInputTextLength
			}
		case FieldSource:
			if utf8.RuneCountInString(prompt.Source) > MaxSourceLength {
				return ErrSourceTooLong
			}
		case FieldOwner:
			if strings.TrimSpace(prompt.UserID) == "" {
				return ErrEmptyOwner
			}
			if utf8.RuneCountInString(prompt.UserID) > MaxUsernameLength {
				return ErrUsernameTooLong
			}
		case FieldPromptID:
			if prompt.ID <= 0 {
				return ErrInvalidPromptID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateBatch only checks the batch envelope when called with FieldPrompts.
// Per-item checks are requested with FieldInputText and report the failing index.
func (v *PromptValidator) validateBatch(ctx context.Context, prompts []models.Prompt, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPrompts}
	}

	for _, f := range fields {
		switch f {
		case FieldPrompts:
			if len(prompts) == 0 {
				return ErrNoPromptsProvided
			}
		case FieldInputText:
			for i, prompt := range prompts {
				if err := v.validatePrompt(ctx, prompt, FieldInputText); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
