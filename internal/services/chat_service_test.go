package services_test

import (
	"context"
	"testing"

	"aura-backend/internal/llm"
	"aura-backend/internal/repository"
	"aura-backend/internal/services"
	aura_errors "aura-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatService() (*services.ChatService, *repository.MemorySessionRepository) {
	repo := repository.NewMemorySessionRepository()
	return services.NewChatService(repo, llm.NewMock()), repo
}

func TestCreateSession(t *testing.T) {
	svc, _ := newChatService()

	s, err := svc.CreateSession(context.Background(), "hello world")
	require.NoError(t, err)

	require.Len(t, s.Messages, 2)
	assert.True(t, s.Messages[0].IsUser)
	assert.Equal(t, "hello world", s.Messages[0].Text)
	assert.False(t, s.Messages[1].IsUser)
	assert.NotEmpty(t, s.Messages[1].Text)

	assert.Equal(t, "hello world", s.Title)
	assert.Equal(t, s.Messages[1].Text, s.LastMessage)
	assert.False(t, s.ID.IsZero())
}

func TestCreateSessionEmptyText(t *testing.T) {
	svc, repo := newChatService()

	_, err := svc.CreateSession(context.Background(), "")
	assert.ErrorIs(t, err, aura_errors.ErrInvalidInput)

	sessions, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sessions, "nothing should be persisted on invalid input")
}

func TestAddMessage(t *testing.T) {
	svc, _ := newChatService()

	created, err := svc.CreateSession(context.Background(), "first")
	require.NoError(t, err)

	res, err := svc.AddMessage(context.Background(), created.ID.Hex(), "hello")
	require.NoError(t, err)

	assert.True(t, res.Message.IsUser)
	assert.Equal(t, "hello", res.Message.Text)
	assert.False(t, res.AIResponse.IsUser)

	require.Len(t, res.UpdatedSession.Messages, 4)
	assert.Equal(t, "hello", res.UpdatedSession.LastMessage)

	// The update must be persisted, not only returned.
	stored, err := svc.GetSession(context.Background(), created.ID.Hex())
	require.NoError(t, err)
	assert.Len(t, stored.Messages, 4)
	assert.Equal(t, "hello", stored.LastMessage)
}

func TestAddMessageUnknownSession(t *testing.T) {
	svc, repo := newChatService()

	_, err := svc.AddMessage(context.Background(), "64f000000000000000000000", "hello")
	assert.ErrorIs(t, err, aura_errors.ErrNotFound)

	sessions, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sessions, "store must be unchanged")
}

func TestAddMessageEmptyText(t *testing.T) {
	svc, _ := newChatService()

	created, err := svc.CreateSession(context.Background(), "first")
	require.NoError(t, err)

	_, err = svc.AddMessage(context.Background(), created.ID.Hex(), "")
	assert.ErrorIs(t, err, aura_errors.ErrInvalidInput)

	stored, err := svc.GetSession(context.Background(), created.ID.Hex())
	require.NoError(t, err)
	assert.Len(t, stored.Messages, 2)
}

func TestListSessions(t *testing.T) {
	svc, _ := newChatService()

	_, err := svc.CreateSession(context.Background(), "one")
	require.NoError(t, err)
	_, err = svc.CreateSession(context.Background(), "two")
	require.NoError(t, err)

	sessions, err := svc.ListSessions(context.Background())
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}
