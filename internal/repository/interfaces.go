// Package repository provides persistence for sessions and users.
package repository

import (
	"context"

	"aura-backend/internal/domain/session"
	"aura-backend/internal/domain/user"
)

// SessionRepository stores chat sessions. IDs cross this boundary as hex
// strings; an id that does not resolve yields ErrNotFound.
type SessionRepository interface {
	Create(ctx context.Context, s *session.Session) error
	GetByID(ctx context.Context, id string) (session.Session, error)
	GetAll(ctx context.Context) ([]session.Session, error)
	Update(ctx context.Context, s session.Session) error
}

// UserRepository stores accounts. Create returns ErrAlreadyExists when the
// phone number is taken; uniqueness is enforced by the store.
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	GetByID(ctx context.Context, id string) (user.User, error)
	GetByPhone(ctx context.Context, phone string) (user.User, error)
	// UpdateFields applies a partial $set-style update and returns the
	// updated document.
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (user.User, error)
}
