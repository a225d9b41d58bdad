package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-prompt-tracker/models"
)

var (
	userColumns   = []string{"user_id", "username", "password_hash", "role", "created_at"}
	promptColumns = []string{"id", "user_id", "input_text", "response_text", "category", "source", "created_at"}
)

// buildInsertUserQuery inserts a user and returns the assigned user_id.
func buildInsertUserQuery(sb sq.StatementBuilderType, user models.User) (string, []any, error) {
	return sb.
		Insert(models.User{}.TableName()).
		Columns("username", "password_hash", "role", "created_at").
		Values(user.Username, user.PasswordHash, string(user.Role), user.CreatedAt).
		Suffix("RETURNING user_id").
		ToSql()
}

func buildSelectUserByUsernameQuery(sb sq.StatementBuilderType, username string) (string, []any, error) {
	return sb.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		Limit(1).
		ToSql()
}

func buildInsertPromptQuery(sb sq.StatementBuilderType, prompt models.Prompt) (string, []any, error) {
	return sb.
		Insert(models.Prompt{}.TableName()).
		Columns("user_id", "input_text", "response_text", "category", "source", "created_at").
		Values(prompt.UserID, prompt.InputText, prompt.ResponseText, prompt.Category, prompt.Source, prompt.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

// buildSelectUserPromptsQuery orders newest first; id breaks ties between
// prompts created within the same timestamp.
func buildSelectUserPromptsQuery(sb sq.StatementBuilderType, userID string) (string, []any, error) {
	return sb.
		Select(promptColumns...).
		From(models.Prompt{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildDeletePromptQuery(sb sq.StatementBuilderType, id int64) (string, []any, error) {
	return sb.
		Delete(models.Prompt{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}
