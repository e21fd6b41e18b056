package services

import (
	"context"
	"time"

	"aura-backend/internal/domain/user"
	"aura-backend/internal/repository"
	aura_errors "aura-backend/pkg/errors"
)

type ProfileService struct {
	userRepo repository.UserRepository
}

func NewProfileService(userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo}
}

// Profile is a user record with the password stripped.
type Profile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Address     string `json:"address,omitempty"`
	Email       string `json:"email,omitempty"`
	Gender      string `json:"gender,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Image       string `json:"image,omitempty"`
}

type UpdateProfileInput struct {
	Name        string
	Address     string
	Email       string
	Gender      string
	DateOfBirth string
	Image       string
}

func (s *ProfileService) GetProfile(ctx context.Context, userID string) (Profile, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	return toProfile(u), nil
}

// UpdateProfile applies only the fields that are present and non-empty.
// Known quirk carried over from the existing API: an empty string is skipped,
// so a field can never be cleared through this endpoint.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (Profile, error) {
	if in.Gender != "" && !user.IsValidGender(in.Gender) {
		return Profile{}, aura_errors.ErrInvalidInput
	}

	fields := map[string]interface{}{}
	if in.Name != "" {
		fields["name"] = in.Name
	}
	if in.Address != "" {
		fields["address"] = in.Address
	}
	if in.Email != "" {
		fields["email"] = in.Email
	}
	if in.Gender != "" {
		fields["gender"] = in.Gender
	}
	if in.DateOfBirth != "" {
		fields["dateOfBirth"] = in.DateOfBirth
	}
	if in.Image != "" {
		fields["image"] = in.Image
	}
	fields["updatedAt"] = time.Now()

	u, err := s.userRepo.UpdateFields(ctx, userID, fields)
	if err != nil {
		return Profile{}, err
	}
	return toProfile(u), nil
}

func toProfile(u user.User) Profile {
	return Profile{
		ID:          u.ID.Hex(),
		Name:        u.Name,
		Phone:       u.Phone,
		Address:     u.Address,
		Email:       u.Email,
		Gender:      u.Gender,
		DateOfBirth: u.DateOfBirth,
		Image:       u.Image,
	}
}
