package services

import (
	"context"
	"errors"
	"time"

	"aura-backend/config"
	"aura-backend/internal/domain/user"
	"aura-backend/internal/repository"
	aura_errors "aura-backend/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
	accessTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(cfg.JWTSecret),
		accessTTL: time.Duration(cfg.JWTExpiryMin) * time.Minute,
	}
}

type RegisterInput struct {
	Name        string
	Phone       string
	Password    string
	Address     string
	Email       string
	Gender      string
	DateOfBirth string
	Image       string
}

type LoginInput struct {
	Phone    string
	Password string
}

type LoginResult struct {
	Token string
	User  UserInfo
}

type UserInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type AccessClaims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) error {
	if err := validateRegister(in); err != nil {
		return err
	}

	if _, err := s.userRepo.GetByPhone(ctx, in.Phone); err == nil {
		return aura_errors.ErrAlreadyExists
	} else if !errors.Is(err, aura_errors.ErrNotFound) {
		return err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return err
	}

	now := time.Now()
	newUser := &user.User{
		Name:        in.Name,
		Phone:       in.Phone,
		Password:    hash,
		Address:     in.Address,
		Email:       in.Email,
		Gender:      in.Gender,
		DateOfBirth: in.DateOfBirth,
		Image:       in.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// The unique phone index catches the race between the lookup above and
	// this insert.
	return s.userRepo.Create(ctx, newUser)
}

func (s *AuthService) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	if in.Phone == "" || in.Password == "" {
		return LoginResult{}, aura_errors.ErrInvalidInput
	}

	u, err := s.userRepo.GetByPhone(ctx, in.Phone)
	if err != nil {
		return LoginResult{}, err
	}

	if err := comparePassword(u.Password, in.Password); err != nil {
		return LoginResult{}, aura_errors.ErrUnauthorized
	}

	token, err := s.newAccessToken(u.ID.Hex())
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{
		Token: token,
		User: UserInfo{
			ID:    u.ID.Hex(),
			Name:  u.Name,
			Phone: u.Phone,
		},
	}, nil
}

func (s *AuthService) ParseAccessToken(tokenString string) (AccessClaims, error) {
	if tokenString == "" {
		return AccessClaims{}, aura_errors.ErrUnauthorized
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, aura_errors.ErrUnauthorized
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return AccessClaims{}, aura_errors.ErrUnauthorized
	}

	claims, ok := parsed.Claims.(*AccessClaims)
	if !ok || !parsed.Valid {
		return AccessClaims{}, aura_errors.ErrUnauthorized
	}

	return *claims, nil
}

func (s *AuthService) newAccessToken(userID string) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// HTTPStatus maps service errors to response status codes. Duplicate phone
// maps to 400, not 409: the mobile client contract reports it as a plain
// bad request.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, aura_errors.ErrInvalidInput):
		return 400
	case errors.Is(err, aura_errors.ErrAlreadyExists):
		return 400
	case errors.Is(err, aura_errors.ErrUnauthorized):
		return 401
	case errors.Is(err, aura_errors.ErrNotFound):
		return 404
	case errors.Is(err, aura_errors.ErrRateLimited):
		return 429
	case errors.Is(err, aura_errors.ErrServiceUnavailable):
		return 503
	default:
		return 500
	}
}

type ctxKey string

var userIDKey ctxKey = "user_id"

func WithUserContext(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	value := ctx.Value(userIDKey)
	if value == nil {
		return "", false
	}
	userID, ok := value.(string)
	return userID, ok
}

func validateRegister(in RegisterInput) error {
	if in.Name == "" || in.Phone == "" || in.Password == "" {
		return aura_errors.ErrInvalidInput
	}
	if in.Gender != "" && !user.IsValidGender(in.Gender) {
		return aura_errors.ErrInvalidInput
	}
	return nil
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
