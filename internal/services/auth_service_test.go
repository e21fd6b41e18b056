package services_test

import (
	"context"
	"testing"

	"aura-backend/config"
	"aura-backend/internal/repository"
	"aura-backend/internal/services"
	aura_errors "aura-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:    "test-secret",
		JWTExpiryMin: 60,
	}
}

func newAuthService() (*services.AuthService, *repository.MemoryUserRepository) {
	repo := repository.NewMemoryUserRepository()
	return services.NewAuthService(repo, testConfig()), repo
}

func registerInput() services.RegisterInput {
	return services.RegisterInput{
		Name:     "Ada",
		Phone:    "+15550001111",
		Password: "secret123",
		Gender:   "female",
	}
}

func TestRegister(t *testing.T) {
	svc, repo := newAuthService()

	require.NoError(t, svc.Register(context.Background(), registerInput()))

	u, err := repo.GetByPhone(context.Background(), "+15550001111")
	require.NoError(t, err)
	assert.Equal(t, "Ada", u.Name)
	assert.NotEqual(t, "secret123", u.Password, "password must be stored hashed")
	assert.NotEmpty(t, u.Password)
}

func TestRegisterDuplicatePhone(t *testing.T) {
	svc, _ := newAuthService()

	require.NoError(t, svc.Register(context.Background(), registerInput()))

	in := registerInput()
	in.Name = "Someone Else"
	err := svc.Register(context.Background(), in)
	assert.ErrorIs(t, err, aura_errors.ErrAlreadyExists)
}

func TestRegisterMissingFields(t *testing.T) {
	svc, _ := newAuthService()

	in := registerInput()
	in.Password = ""
	assert.ErrorIs(t, svc.Register(context.Background(), in), aura_errors.ErrInvalidInput)

	in = registerInput()
	in.Phone = ""
	assert.ErrorIs(t, svc.Register(context.Background(), in), aura_errors.ErrInvalidInput)
}

func TestRegisterInvalidGender(t *testing.T) {
	svc, _ := newAuthService()

	in := registerInput()
	in.Gender = "unknown"
	assert.ErrorIs(t, svc.Register(context.Background(), in), aura_errors.ErrInvalidInput)
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService()
	require.NoError(t, svc.Register(context.Background(), registerInput()))

	res, err := svc.Login(context.Background(), services.LoginInput{
		Phone:    "+15550001111",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "Ada", res.User.Name)
	assert.Equal(t, "+15550001111", res.User.Phone)

	claims, err := svc.ParseAccessToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService()
	require.NoError(t, svc.Register(context.Background(), registerInput()))

	_, err := svc.Login(context.Background(), services.LoginInput{
		Phone:    "+15550001111",
		Password: "not-the-password",
	})
	assert.ErrorIs(t, err, aura_errors.ErrUnauthorized)
}

func TestLoginUnknownPhone(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.Login(context.Background(), services.LoginInput{
		Phone:    "+15559999999",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, aura_errors.ErrNotFound)
}

func TestParseAccessTokenRejectsGarbage(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.ParseAccessToken("not-a-token")
	assert.ErrorIs(t, err, aura_errors.ErrUnauthorized)

	_, err = svc.ParseAccessToken("")
	assert.ErrorIs(t, err, aura_errors.ErrUnauthorized)
}
