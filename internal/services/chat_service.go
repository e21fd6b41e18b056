package services

import (
	"context"
	"time"

	"aura-backend/internal/domain/session"
	"aura-backend/internal/llm"
	"aura-backend/internal/repository"
	aura_errors "aura-backend/pkg/errors"
)

// ChatService owns the session lifecycle: create on first message, grow by
// appending user/assistant pairs.
type ChatService struct {
	sessionRepo repository.SessionRepository
	completions llm.CompletionClient
}

func NewChatService(sessionRepo repository.SessionRepository, completions llm.CompletionClient) *ChatService {
	return &ChatService{
		sessionRepo: sessionRepo,
		completions: completions,
	}
}

type AddMessageResult struct {
	Message        session.Message
	AIResponse     session.Message
	UpdatedSession session.Session
}

// CreateSession starts a conversation from the first user message. The
// session title is that message; lastMessage is the assistant reply.
func (s *ChatService) CreateSession(ctx context.Context, text string) (session.Session, error) {
	if text == "" {
		return session.Session{}, aura_errors.ErrInvalidInput
	}

	userMessage := session.NewUserMessage(text)

	aiText, err := s.completions.Complete(ctx, text)
	if err != nil {
		return session.Session{}, err
	}
	aiMessage := session.NewAssistantMessage(aiText)

	newSession := session.Session{
		Title:       text,
		LastMessage: aiText,
		Timestamp:   time.Now(),
		Messages:    []session.Message{userMessage, aiMessage},
	}

	if err := s.sessionRepo.Create(ctx, &newSession); err != nil {
		return session.Session{}, err
	}

	return newSession, nil
}

// AddMessage appends a user/assistant pair to an existing session. Note that
// lastMessage becomes the user text here, unlike CreateSession.
func (s *ChatService) AddMessage(ctx context.Context, sessionID, text string) (AddMessageResult, error) {
	if text == "" {
		return AddMessageResult{}, aura_errors.ErrInvalidInput
	}

	current, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return AddMessageResult{}, err
	}

	userMessage := session.NewUserMessage(text)

	aiText, err := s.completions.Complete(ctx, text)
	if err != nil {
		return AddMessageResult{}, err
	}
	aiMessage := session.NewAssistantMessage(aiText)

	current.Messages = append(current.Messages, userMessage, aiMessage)
	current.LastMessage = text
	current.Timestamp = time.Now()

	if err := s.sessionRepo.Update(ctx, current); err != nil {
		return AddMessageResult{}, err
	}

	return AddMessageResult{
		Message:        userMessage,
		AIResponse:     aiMessage,
		UpdatedSession: current,
	}, nil
}

// ListSessions returns all sessions, unfiltered and unsorted.
func (s *ChatService) ListSessions(ctx context.Context) ([]session.Session, error) {
	return s.sessionRepo.GetAll(ctx)
}

func (s *ChatService) GetSession(ctx context.Context, sessionID string) (session.Session, error) {
	return s.sessionRepo.GetByID(ctx, sessionID)
}
