package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/thedevhaider/dating-network/internal/models"
)

var ErrInvalidImage = errors.New("invalid image file")

var validImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ImageService stores uploaded profile and vote images on disk under
// uuid-derived filenames. The returned URL is what clients put in the
// optional image field of a profile or vote.
type ImageService struct {
	uploadDir string
}

func NewImageService(uploadDir string) *ImageService {
	os.MkdirAll(uploadDir, 0755)
	return &ImageService{uploadDir: uploadDir}
}

// Upload writes the file under a fresh uuid name. ErrInvalidImage when
// the declared content type is not an accepted image format.
func (s *ImageService) Upload(filename, contentType string, file io.Reader) (*models.ImageUploadResponse, error) {
	if !validImageTypes[contentType] {
		return nil, ErrInvalidImage
	}

	imageID := uuid.New().String()

	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".jpg"
	}

	newFilename := imageID + ext
	filePath := filepath.Join(s.uploadDir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(filePath)
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	return &models.ImageUploadResponse{
		ID:       imageID,
		URL:      "/uploads/" + newFilename,
		Filename: newFilename,
	}, nil
}
