package services

import (
	"context"
	"fmt"
	"time"

	"aura-backend/internal/storage"
	aura_errors "aura-backend/pkg/errors"

	"github.com/google/uuid"
)

// AvatarService hands out presigned S3 PUT URLs for profile images. The
// client uploads directly to S3 and then stores the returned file URL via
// the profile update endpoint.
type AvatarService struct {
	s3 *storage.Client
}

func NewAvatarService(s3 *storage.Client) *AvatarService {
	return &AvatarService{s3: s3}
}

var allowedImageTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

const maxAvatarBytes = 5 << 20

type PresignedUpload struct {
	UploadURL string            `json:"uploadUrl"`
	FileURL   string            `json:"fileUrl"`
	Headers   map[string]string `json:"headers,omitempty"`
	ExpiresAt time.Time         `json:"expiresAt"`
}

func (s *AvatarService) PresignAvatarUpload(ctx context.Context, userID, contentType string, sizeBytes int64) (PresignedUpload, error) {
	if s.s3 == nil {
		return PresignedUpload{}, aura_errors.ErrServiceUnavailable
	}

	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return PresignedUpload{}, aura_errors.ErrInvalidInput
	}
	if sizeBytes <= 0 || sizeBytes > maxAvatarBytes {
		return PresignedUpload{}, aura_errors.ErrInvalidInput
	}

	key := fmt.Sprintf("avatars/%s/%s.%s", userID, uuid.NewString(), ext)

	uploadURL, headers, err := s.s3.PresignPut(ctx, key, contentType, sizeBytes)
	if err != nil {
		return PresignedUpload{}, err
	}

	return PresignedUpload{
		UploadURL: uploadURL,
		FileURL:   s.s3.FileURL(key),
		Headers:   headers,
		ExpiresAt: time.Now().Add(15 * time.Minute),
	}, nil
}
