package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-prompt-tracker/internal/logger"
	"github.com/MKhiriev/go-prompt-tracker/models"
)

// promptRepository is the SQL-backed implementation of [PromptRepository]
// working against the "prompts" table.
type promptRepository struct {
	*DB
	logger *logger.Logger
}

// NewPromptRepository constructs a [PromptRepository] backed by the
// provided database connection and logger.
func NewPromptRepository(db *DB, logger *logger.Logger) PromptRepository {
	logger.Debug().Msg("creating prompt repository")
	return &promptRepository{
		DB:     db,
		logger: logger,
	}
}

// SavePrompt inserts the prompt and returns it with the database-assigned ID.
func (p *promptRepository) SavePrompt(ctx context.Context, prompt models.Prompt) (models.Prompt, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPromptQuery(p.builder, prompt)
	if err != nil {
		log.Err(err).Str("func", "promptRepository.SavePrompt").Msg("failed to build query")
		return models.Prompt{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = p.DB.QueryRowContext(ctx, query, args...).Scan(&prompt.ID); err != nil {
		log.Err(err).
			Str("func", "promptRepository.SavePrompt").
			Str("user_id", prompt.UserID).
			Stringer("classification", p.errorClassificator.Classify(err)).
			Msg("failed to insert prompt")
		return models.Prompt{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().
		Str("func", "promptRepository.SavePrompt").
		Int64("id", prompt.ID).
		Str("category", prompt.Category).
		Msg("prompt saved")

	return prompt, nil
}

// GetUserPrompts returns all prompts of userID, newest first.
// Returns an empty slice when the user has none.
func (p *promptRepository) GetUserPrompts(ctx context.Context, userID string) ([]models.Prompt, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserPromptsQuery(p.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "promptRepository.GetUserPrompts").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "promptRepository.GetUserPrompts").
			Str("user_id", userID).
			Msg("failed to execute query for getting user prompts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	prompts := make([]models.Prompt, 0, 50)

	for rows.Next() {
		var (
			prompt   models.Prompt
			response sql.NullString
		)

		scanErr := rows.Scan(
			&prompt.ID,
			&prompt.UserID,
			&prompt.InputText,
			&response,
			&prompt.Category,
			&prompt.Source,
			&prompt.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "promptRepository.GetUserPrompts").
				Str("user_id", userID).
				Msg("failed to scan prompt row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		if response.Valid {
			prompt.ResponseText = &response.String
		}

		prompts = append(prompts, prompt)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "promptRepository.GetUserPrompts").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return prompts, nil
}

// DeletePrompt removes a prompt by id. Zero affected rows → [ErrPromptNotFound].
func (p *promptRepository) DeletePrompt(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePromptQuery(p.builder, id)
	if err != nil {
		log.Err(err).Str("func", "promptRepository.DeletePrompt").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "promptRepository.DeletePrompt").Int64("id", id).Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "promptRepository.DeletePrompt").Int64("id", id).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Warn().Str("func", "promptRepository.DeletePrompt").Int64("id", id).Msg("prompt not found")
		return ErrPromptNotFound
	}

	log.Info().Str("func", "promptRepository.DeletePrompt").Int64("id", id).Msg("prompt deleted")
	return nil
}
