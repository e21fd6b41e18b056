package repository

import (
	"context"
	"sync"

	"aura-backend/internal/domain/session"
	aura_errors "aura-backend/pkg/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemorySessionRepository is a map-backed SessionRepository used by tests
// and when no store is configured.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]session.Session
}

func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{sessions: make(map[string]session.Session)}
}

func (r *MemorySessionRepository) Create(_ context.Context, s *session.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	r.sessions[s.ID.Hex()] = *s
	return nil
}

func (r *MemorySessionRepository) GetByID(_ context.Context, id string) (session.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return session.Session{}, aura_errors.ErrNotFound
	}
	return s, nil
}

func (r *MemorySessionRepository) GetAll(_ context.Context) ([]session.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]session.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		result = append(result, s)
	}
	return result, nil
}

func (r *MemorySessionRepository) Update(_ context.Context, s session.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[s.ID.Hex()]; !ok {
		return aura_errors.ErrNotFound
	}
	r.sessions[s.ID.Hex()] = s
	return nil
}
