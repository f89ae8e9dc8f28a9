package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/dtroode/travelstory-server/internal/api/rest/response"
	"github.com/dtroode/travelstory-server/internal/apierror"
	"github.com/dtroode/travelstory-server/internal/logger"
)

const (
	imageFormField = "image"
	// multipartOverhead leaves room for boundaries and headers around the file part.
	multipartOverhead = 1 << 20
)

// ImageService defines image hosting operations.
type ImageService interface {
	UploadImage(ctx context.Context, file io.Reader, size int64, contentType string) (string, error)
	DeleteImage(ctx context.Context, imageURL string) error
}

type imageResponse struct {
	ImageURL string `json:"imageUrl"`
}

// Image handles HTTP endpoints for image hosting.
type Image struct {
	imageService ImageService
	maxBytes     int64
	logger       *logger.Logger
}

// NewImage creates a new Image handler accepting files up to maxBytes.
func NewImage(imageService ImageService, maxBytes int64, logger *logger.Logger) *Image {
	return &Image{imageService: imageService, maxBytes: maxBytes, logger: logger}
}

// Upload stores the multipart file in the "image" field and returns its URL.
func (h *Image) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+multipartOverhead)

	file, header, err := r.FormFile(imageFormField)
	if err != nil {
		handleError(w, uploadError(err, h.maxBytes))
		return
	}
	defer file.Close()

	imageURL, err := h.imageService.UploadImage(r.Context(), file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		if apierror.From(err).Kind == apierror.KindUpstream {
			h.logger.Error("Image handler: upload failed",
				"filename", header.Filename,
				"error", err.Error())
		}
		handleError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, imageResponse{ImageURL: imageURL})
}

// Delete removes the hosted image named by the imageUrl query parameter.
func (h *Image) Delete(w http.ResponseWriter, r *http.Request) {
	imageURL := r.URL.Query().Get("imageUrl")

	if err := h.imageService.DeleteImage(r.Context(), imageURL); err != nil {
		if apierror.From(err).Kind == apierror.KindUpstream {
			h.logger.Error("Image handler: delete failed",
				"image_url", imageURL,
				"error", err.Error())
		}
		handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, messageResponse{Message: "Image deleted successfully"})
}

func uploadError(err error, maxBytes int64) error {
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		return apierror.NewErrValidation("File too large. Maximum size is %d bytes", maxBytes)
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return apierror.NewErrValidation("No image uploaded")
	default:
		return apierror.NewErrValidation("Invalid upload: %s", err.Error())
	}
}
