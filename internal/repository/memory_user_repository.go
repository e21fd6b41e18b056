package repository

import (
	"context"
	"sync"
	"time"

	"aura-backend/internal/domain/user"
	aura_errors "aura-backend/pkg/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryUserRepository is a map-backed UserRepository used by tests and when
// no store is configured. Phone uniqueness is checked under the lock.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]user.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]user.User)}
}

func (r *MemoryUserRepository) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Phone == u.Phone {
			return aura_errors.ErrAlreadyExists
		}
	}

	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	r.users[u.ID.Hex()] = *u
	return nil
}

func (r *MemoryUserRepository) GetByID(_ context.Context, id string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return user.User{}, aura_errors.ErrNotFound
	}
	return u, nil
}

func (r *MemoryUserRepository) GetByPhone(_ context.Context, phone string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return user.User{}, aura_errors.ErrNotFound
}

func (r *MemoryUserRepository) UpdateFields(_ context.Context, id string, fields map[string]interface{}) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return user.User{}, aura_errors.ErrNotFound
	}

	for key, value := range fields {
		switch key {
		case "name":
			u.Name = value.(string)
		case "address":
			u.Address = value.(string)
		case "email":
			u.Email = value.(string)
		case "gender":
			u.Gender = value.(string)
		case "dateOfBirth":
			u.DateOfBirth = value.(string)
		case "image":
			u.Image = value.(string)
		case "updatedAt":
			u.UpdatedAt = value.(time.Time)
		}
	}

	r.users[id] = u
	return u, nil
}
