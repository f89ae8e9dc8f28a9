package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/travelstory-server/internal/apierror"
	"github.com/dtroode/travelstory-server/internal/imaging"
	"github.com/dtroode/travelstory-server/internal/logger"
	"github.com/dtroode/travelstory-server/internal/model"
)

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/webp": {},
}

// ImageOptions configures image hosting.
type ImageOptions struct {
	Folder    string
	MaxBytes  int64
	MaxWidth  int
	MaxHeight int
	Timeout   time.Duration
}

// Image hosts uploaded pictures in object storage.
type Image struct {
	storage model.Storage
	opts    ImageOptions
	logger  *logger.Logger
}

func NewImage(storage model.Storage, opts ImageOptions, logger *logger.Logger) *Image {
	return &Image{storage: storage, opts: opts, logger: logger}
}

// UploadImage validates, normalizes and stores an image and returns its public URL.
// size is the declared size of the upload, or -1 when unknown.
func (s *Image) UploadImage(ctx context.Context, file io.Reader, size int64, contentType string) (string, error) {
	mediaType, err := parseImageType(contentType)
	if err != nil {
		return "", err
	}
	if size > s.opts.MaxBytes {
		return "", s.errTooLarge()
	}

	data, err := io.ReadAll(io.LimitReader(file, s.opts.MaxBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if int64(len(data)) > s.opts.MaxBytes {
		return "", s.errTooLarge()
	}
	if len(data) == 0 {
		return "", apierror.NewErrValidation("No image uploaded")
	}

	normalized, err := imaging.Normalize(bytes.NewReader(data), s.opts.MaxWidth, s.opts.MaxHeight)
	if err != nil {
		s.logger.Info("Image service: rejected image",
			"content_type", mediaType,
			"error", err.Error())
		if errors.Is(err, imaging.ErrTooLarge) {
			return "", apierror.NewErrValidation("Image dimensions too large. Maximum is %d pixels", imaging.MaxPixels)
		}
		return "", apierror.NewErrValidation("Invalid image data")
	}

	key := s.key(uuid.NewString())

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err = s.storage.Upload(ctx, key, bytes.NewReader(normalized), int64(len(normalized)), imaging.ContentType)
	if err != nil {
		s.logger.Error("Image service: failed to upload image",
			"key", key,
			"error", err.Error())
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	s.logger.Info("Image service: image uploaded",
		"key", key,
		"original_bytes", len(data),
		"stored_bytes", len(normalized))

	return s.storage.URL(key), nil
}

// DeleteImage removes the hosted object referenced by imageURL.
func (s *Image) DeleteImage(ctx context.Context, imageURL string) error {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return apierror.NewErrValidation("imageUrl parameter is required")
	}

	publicID := PublicID(imageURL)
	if publicID == "" {
		return apierror.NewErrValidation("Invalid image URL")
	}

	key := s.key(publicID)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.storage.Delete(ctx, key); err != nil {
		s.logger.Error("Image service: failed to delete image",
			"key", key,
			"error", err.Error())
		return fmt.Errorf("failed to delete image: %w", err)
	}

	s.logger.Info("Image service: image deleted", "key", key)

	return nil
}

// PublicID returns the identifier of a hosted image: the last path segment of
// its URL up to the first dot.
func PublicID(imageURL string) string {
	p := imageURL
	if u, err := url.Parse(imageURL); err == nil {
		p = u.Path
	}

	base := path.Base(p)
	if base == "/" || base == "." {
		return ""
	}
	id, _, _ := strings.Cut(base, ".")
	return id
}

func (s *Image) key(publicID string) string {
	name := publicID + imaging.Extension
	if s.opts.Folder == "" {
		return name
	}
	return s.opts.Folder + "/" + name
}

func (s *Image) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opts.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.opts.Timeout)
}

func (s *Image) errTooLarge() error {
	return apierror.NewErrValidation("File too large. Maximum size is %d bytes", s.opts.MaxBytes)
}

func parseImageType(contentType string) (string, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = contentType
	}
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))

	if _, ok := allowedImageTypes[mediaType]; !ok {
		return "", apierror.NewErrValidation(
			"Invalid file type. Only JPEG, PNG, JPG, and WebP are allowed. Received: %s", contentType)
	}
	return mediaType, nil
}
