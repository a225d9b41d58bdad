package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-prompt-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPromptValidator(t *testing.T) {
	require.NotNil(t, NewPromptValidator())
}

func TestPromptValidator_Dispatch(t *testing.T) {
	v := NewPromptValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var p *models.Prompt
		require.ErrorIs(t, v.Validate(ctx, p), ErrUnsupportedType)
	})

	t.Run("pointer", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, &models.Prompt{InputText: "hello"}))
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, models.Prompt{}, "category"), ErrUnknownField)
	})
}

func TestPromptValidator_InputText(t *testing.T) {
	v := NewPromptValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{name: "empty", text: "", wantErr: ErrEmptyInputText},
		{name: "whitespace only", text: " \t\n", wantErr: ErrEmptyInputText},
		{name: "two characters", text: "hi", wantErr: ErrInputTextLength},
		{name: "padded two characters", text: "   hi   ", wantErr: ErrInputTextLength},
		{name: "three characters", text: "hey"},
		{name: "three multibyte characters", text: "абв"},
		{name: "exactly 1000", text: strings.Repeat("x", 1000)},
		{name: "1001 characters", text: strings.Repeat("x", 1001), wantErr: ErrInputTextLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, models.Prompt{InputText: tt.text})
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPromptValidator_Source(t *testing.T) {
	v := NewPromptValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		source  string
		wantErr error
	}{
		{name: "empty", source: ""},
		{name: "50 characters", source: strings.Repeat("s", 50)},
		{name: "50 multibyte characters", source: strings.Repeat("ё", 50)},
		{name: "51 characters", source: strings.Repeat("s", 51), wantErr: ErrSourceTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, models.Prompt{Source: tt.source}, FieldSource)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPromptValidator_OwnerAndID(t *testing.T) {
	v := NewPromptValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.Prompt{}, FieldOwner), ErrEmptyOwner)
	assert.NoError(t, v.Validate(ctx, models.Prompt{UserID: "alice"}, FieldOwner))
	assert.NoError(t, v.Validate(ctx, models.Prompt{UserID: strings.Repeat("a", 100)}, FieldOwner))
	assert.ErrorIs(t, v.Validate(ctx, models.Prompt{UserID: strings.Repeat("a", 101)}, FieldOwner), ErrUsernameTooLong)

	assert.ErrorIs(t, v.Validate(ctx, models.Prompt{}, FieldPromptID), ErrInvalidPromptID)
	assert.ErrorIs(t, v.Validate(ctx, models.Prompt{ID: -1}, FieldPromptID), ErrInvalidPromptID)
	assert.NoError(t, v.Validate(ctx, models.Prompt{ID: 7}, FieldPromptID))
}

func TestPromptValidator_Batch(t *testing.T) {
	v := NewPromptValidator()
	ctx := context.Background()

	t.Run("empty batch", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, []models.Prompt{}), ErrNoPromptsProvided)
	})

	t.Run("nil batch", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, []models.Prompt(nil)), ErrNoPromptsProvided)
	})

	t.Run("envelope ignores item content", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, []models.Prompt{{InputText: ""}}))
	})

	t.Run("item check reports index", func(t *testing.T) {
		batch := []models.Prompt{{InputText: "fine text"}, {InputText: "x"}}
		err := v.Validate(ctx, batch, FieldInputText)
		require.ErrorIs(t, err, ErrInputTextLength)
		assert.Contains(t, err.Error(), "index 1")
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, []models.Prompt{{}}, FieldOwner), ErrUnknownField)
	})
}
