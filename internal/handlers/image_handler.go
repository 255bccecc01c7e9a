package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/thedevhaider/dating-network/internal/models"
	"github.com/thedevhaider/dating-network/internal/services"
)

type ImageHandler struct {
	imageService *services.ImageService
	maxSizeMB    int64
}

func NewImageHandler(imageService *services.ImageService, maxSizeMB int64) *ImageHandler {
	return &ImageHandler{
		imageService: imageService,
		maxSizeMB:    maxSizeMB,
	}
}

// Upload accepts a multipart image and returns the URL to put in the
// optional image field of a profile or vote.
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxSizeMB*1024*1024)

	if err := r.ParseMultipartForm(h.maxSizeMB * 1024 * 1024); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorBody("error", "File too large or invalid form data"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorBody("error", "No image file provided"))
		return
	}
	defer file.Close()

	response, err := h.imageService.Upload(header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		if err == services.ErrInvalidImage {
			writeJSON(w, http.StatusBadRequest, models.ErrorBody("error", "Invalid image type. Allowed: JPEG, PNG, GIF, WebP"))
			return
		}
		log.Error().Err(err).Msg("upload image")
		writeJSON(w, http.StatusInternalServerError, models.ErrorBody("error", "Failed to upload image"))
		return
	}

	writeJSON(w, http.StatusCreated, response)
}
