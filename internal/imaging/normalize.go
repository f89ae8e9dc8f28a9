// Package imaging normalizes uploaded pictures before they are hosted.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	_ "image/png"
	"io"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	// ContentType of every normalized image.
	ContentType = "image/jpeg"
	// Extension of every normalized image.
	Extension = ".jpg"

	jpegQuality = 85

	// MaxPixels bounds the canvas a source image may declare.
	MaxPixels = 40_000_000
)

var (
	// ErrUnsupportedFormat is returned when the input cannot be decoded.
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrTooLarge is returned when the declared dimensions exceed MaxPixels.
	ErrTooLarge = errors.New("image dimensions too large")
)

// Normalize decodes a JPEG, PNG or WebP image, shrinks it to fit within
// maxWidth x maxHeight keeping its aspect ratio and re-encodes it as JPEG.
// Images that already fit are not enlarged. Non-positive bounds disable resizing.
// The header is checked against MaxPixels before any pixel data is decoded.
func Normalize(r io.Reader, maxWidth, maxHeight int) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, decodeError(err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ErrUnsupportedFormat
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return nil, ErrTooLarge
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, decodeError(err)
	}

	b := src.Bounds()
	w, h := FitWithin(b.Dx(), b.Dy(), maxWidth, maxHeight)

	// JPEG has no alpha channel; flatten transparent areas onto white.
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Over)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return buf.Bytes(), nil
}

func decodeError(err error) error {
	if errors.Is(err, image.ErrFormat) {
		return ErrUnsupportedFormat
	}
	return fmt.Errorf("failed to decode image: %w", err)
}

// FitWithin returns the largest size with the aspect ratio of w x h that
// fits in maxW x maxH, never larger than w x h itself.
func FitWithin(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return w, h
	}
	if maxW <= 0 {
		maxW = w
	}
	if maxH <= 0 {
		maxH = h
	}
	if w <= maxW && h <= maxH {
		return w, h
	}

	// Compare w/maxW and h/maxH without floating point.
	if w*maxH >= h*maxW {
		nh := h * maxW / w
		return maxW, max(nh, 1)
	}
	nw := w * maxH / h
	return max(nw, 1), maxH
}
