package httpdto

import "time"

// ProfileDTO is a user record with the password omitted.
type ProfileDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Address     string `json:"address,omitempty"`
	Email       string `json:"email,omitempty"`
	Gender      string `json:"gender,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Image       string `json:"image,omitempty"`
}

// UpdateProfileRequest is used for PUT /profile. Absent or empty fields are
// skipped, not cleared.
type UpdateProfileRequest struct {
	Name        string `json:"name,omitempty"`
	Address     string `json:"address,omitempty"`
	Email       string `json:"email,omitempty"`
	Gender      string `json:"gender,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Image       string `json:"image,omitempty"`
}

// UpdateProfileResponse is returned by PUT /profile
type UpdateProfileResponse struct {
	Message string     `json:"message"`
	User    ProfileDTO `json:"user"`
}

// PresignAvatarRequest is used for POST /profile/image
type PresignAvatarRequest struct {
	ContentType string `json:"contentType" binding:"required"`
	Size        int64  `json:"size"`
}

// PresignAvatarResponse is returned by POST /profile/image
type PresignAvatarResponse struct {
	UploadURL string            `json:"uploadUrl"`
	FileURL   string            `json:"fileUrl"`
	Headers   map[string]string `json:"headers,omitempty"`
	ExpiresAt time.Time         `json:"expiresAt"`
}
