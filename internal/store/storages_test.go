package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-prompt-tracker/internal/config"
	"github.com/MKhiriev/go-prompt-tracker/internal/logger"
	"github.com/MKhiriev/go-prompt-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	cfg := config.Storage{DB: config.DB{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "prompts.db"),
	}}

	storages, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	return storages
}

func TestNewStorages_UnsupportedDriver(t *testing.T) {
	cfg := config.Storage{DB: config.DB{Driver: "mysql", DSN: "x"}}

	_, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestStorages_CloseNil(t *testing.T) {
	var s *Storages
	assert.NoError(t, s.Close())
}

func TestSQLiteStorages_Users(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	created, err := s.UserRepository.CreateUser(ctx, models.User{
		Username:     "Alice",
		PasswordHash: "$2a$04$hash",
		Role:         models.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Positive(t, created.UserID)
	assert.Equal(t, models.RoleAdmin, created.Role)
	assert.False(t, created.CreatedAt.IsZero())

	t.Run("duplicate username", func(t *testing.T) {
		_, err := s.UserRepository.CreateUser(ctx, models.User{Username: "Alice", PasswordHash: "other", Role: models.RoleUser})
		require.ErrorIs(t, err, ErrLoginAlreadyExists)
	})

	t.Run("lookup is case sensitive", func(t *testing.T) {
		_, err := s.UserRepository.FindUserByUsername(ctx, "alice")
		require.ErrorIs(t, err, ErrNoUserWasFound)

		found, err := s.UserRepository.FindUserByUsername(ctx, "Alice")
		require.NoError(t, err)
		assert.Equal(t, created.UserID, found.UserID)
		assert.Equal(t, "$2a$04$hash", found.PasswordHash)
	})
}

func TestSQLiteStorages_Prompts(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	first, err := s.PromptRepository.SavePrompt(ctx, models.Prompt{
		UserID: "alice", InputText: "solve this equation", Category: "Math", Source: "User", CreatedAt: base,
	})
	require.NoError(t, err)

	response := "done"
	second, err := s.PromptRepository.SavePrompt(ctx, models.Prompt{
		UserID: "alice", InputText: "write an essay", ResponseText: &response, Category: "Writing", Source: "User", CreatedAt: base.Add(time.Minute),
	})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	_, err = s.PromptRepository.SavePrompt(ctx, models.Prompt{
		UserID: "bob", InputText: "hello there", Category: "General", Source: "User", CreatedAt: base,
	})
	require.NoError(t, err)

	prompts, err := s.PromptRepository.GetUserPrompts(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, prompts, 2)
	assert.Equal(t, second.ID, prompts[0].ID, "newest first")
	require.NotNil(t, prompts[0].ResponseText)
	assert.Equal(t, "done", *prompts[0].ResponseText)
	assert.Nil(t, prompts[1].ResponseText)

	require.NoError(t, s.PromptRepository.DeletePrompt(ctx, first.ID))

	err = s.PromptRepository.DeletePrompt(ctx, first.ID)
	assert.True(t, errors.Is(err, ErrPromptNotFound))

	prompts, err = s.PromptRepository.GetUserPrompts(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, prompts, 1)
}
