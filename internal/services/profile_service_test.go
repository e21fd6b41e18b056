package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"aura-backend/internal/repository"
	"aura-backend/internal/services"
	aura_errors "aura-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileFixture(t *testing.T) (*services.ProfileService, string) {
	t.Helper()

	repo := repository.NewMemoryUserRepository()
	authSvc := services.NewAuthService(repo, testConfig())

	require.NoError(t, authSvc.Register(context.Background(), registerInput()))

	u, err := repo.GetByPhone(context.Background(), "+15550001111")
	require.NoError(t, err)

	return services.NewProfileService(repo), u.ID.Hex()
}

func TestGetProfile(t *testing.T) {
	svc, userID := newProfileFixture(t)

	p, err := svc.GetProfile(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, "Ada", p.Name)
	assert.Equal(t, "+15550001111", p.Phone)
}

func TestGetProfileNeverExposesPassword(t *testing.T) {
	svc, userID := newProfileFixture(t)

	p, err := svc.GetProfile(context.Background(), userID)
	require.NoError(t, err)

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var asMap map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &asMap))
	assert.NotContains(t, asMap, "password")
}

func TestGetProfileUnknownUser(t *testing.T) {
	svc, _ := newProfileFixture(t)

	_, err := svc.GetProfile(context.Background(), "64f000000000000000000000")
	assert.ErrorIs(t, err, aura_errors.ErrNotFound)
}

func TestUpdateProfile(t *testing.T) {
	svc, userID := newProfileFixture(t)

	p, err := svc.UpdateProfile(context.Background(), userID, services.UpdateProfileInput{
		Address: "1 Infinite Loop",
		Email:   "ada@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "1 Infinite Loop", p.Address)
	assert.Equal(t, "ada@example.com", p.Email)
	assert.Equal(t, "Ada", p.Name, "untouched fields keep their value")
}

// Empty strings are skipped, not written: a field cannot be cleared through
// this endpoint. This pins the carried-over behavior.
func TestUpdateProfileSkipsEmptyFields(t *testing.T) {
	svc, userID := newProfileFixture(t)

	p, err := svc.UpdateProfile(context.Background(), userID, services.UpdateProfileInput{
		Name:    "",
		Address: "X",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ada", p.Name, "empty name must be skipped, not cleared")
	assert.Equal(t, "X", p.Address)
}

func TestUpdateProfileInvalidGender(t *testing.T) {
	svc, userID := newProfileFixture(t)

	_, err := svc.UpdateProfile(context.Background(), userID, services.UpdateProfileInput{
		Gender: "robot",
	})
	assert.ErrorIs(t, err, aura_errors.ErrInvalidInput)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	svc, _ := newProfileFixture(t)

	_, err := svc.UpdateProfile(context.Background(), "64f000000000000000000000", services.UpdateProfileInput{
		Address: "X",
	})
	assert.ErrorIs(t, err, aura_errors.ErrNotFound)
}
