package handler

import (
	"errors"
	"net/http"

	"aura-backend/internal/services"
	"aura-backend/internal/transport/httpdto"
	aura_errors "aura-backend/pkg/errors"

	"github.com/gin-gonic/gin"
)

// ProfileHandler handles the authenticated profile endpoints.
type ProfileHandler struct {
	profiles *services.ProfileService
	avatars  *services.AvatarService
}

// NewProfileHandler creates a profile handler. avatars may be nil when no
// object storage is configured.
func NewProfileHandler(profiles *services.ProfileService, avatars *services.AvatarService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, avatars: avatars}
}

// GetProfile handles GET /profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewMessageResponse("Unauthorized"))
		return
	}

	profile, err := h.profiles.GetProfile(c.Request.Context(), userID)
	if err != nil {
		writeProfileError(c, err, "Failed to fetch profile")
		return
	}

	c.JSON(http.StatusOK, toProfileDTO(profile))
}

// UpdateProfile handles PUT /profile. Empty fields in the body are skipped.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewMessageResponse("Unauthorized"))
		return
	}

	var req httpdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewMessageResponse("Invalid request body"))
		return
	}

	profile, err := h.profiles.UpdateProfile(c.Request.Context(), userID, services.UpdateProfileInput{
		Name:        req.Name,
		Address:     req.Address,
		Email:       req.Email,
		Gender:      req.Gender,
		DateOfBirth: req.DateOfBirth,
		Image:       req.Image,
	})
	if err != nil {
		writeProfileError(c, err, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, httpdto.UpdateProfileResponse{
		Message: "Profile updated successfully",
		User:    toProfileDTO(profile),
	})
}

// PresignAvatar handles POST /profile/image.
func (h *ProfileHandler) PresignAvatar(c *gin.Context) {
	userID, ok := services.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.NewMessageResponse("Unauthorized"))
		return
	}

	if h.avatars == nil {
		c.JSON(http.StatusServiceUnavailable, httpdto.NewMessageResponse("Image uploads are not available"))
		return
	}

	var req httpdto.PresignAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewMessageResponse("contentType is required"))
		return
	}

	upload, err := h.avatars.PresignAvatarUpload(c.Request.Context(), userID, req.ContentType, req.Size)
	if err != nil {
		switch {
		case errors.Is(err, aura_errors.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, httpdto.NewMessageResponse("Unsupported image type or size"))
		case errors.Is(err, aura_errors.ErrServiceUnavailable):
			c.JSON(http.StatusServiceUnavailable, httpdto.NewMessageResponse("Image uploads are not available"))
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, httpdto.NewMessageResponse("Failed to prepare upload"))
		}
		return
	}

	c.JSON(http.StatusOK, httpdto.PresignAvatarResponse{
		UploadURL: upload.UploadURL,
		FileURL:   upload.FileURL,
		Headers:   upload.Headers,
		ExpiresAt: upload.ExpiresAt,
	})
}

func writeProfileError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, aura_errors.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, httpdto.NewMessageResponse("Invalid profile fields"))
	case errors.Is(err, aura_errors.ErrNotFound):
		c.JSON(http.StatusNotFound, httpdto.NewMessageResponse("User not found"))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, httpdto.NewMessageResponse(fallback))
	}
}

func toProfileDTO(p services.Profile) httpdto.ProfileDTO {
	return httpdto.ProfileDTO{
		ID:          p.ID,
		Name:        p.Name,
		Phone:       p.Phone,
		Address:     p.Address,
		Email:       p.Email,
		Gender:      p.Gender,
		DateOfBirth: p.DateOfBirth,
		Image:       p.Image,
	}
}
