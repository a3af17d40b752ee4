// Package imageio decodes and encodes images for the circleimage command.
//
// PNG, JPEG and GIF come from the standard library; WebP, BMP and TIFF are
// registered from golang.org/x/image.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

var (
	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("imageio: empty data")

	// ErrUnsupportedFormat is returned when an output extension is unknown.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")
)

// Load decodes the image at path, detecting the format from its content.
func Load(path string) (image.Image, string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, "", fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from r and reports the detected format name.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("imageio: decode: %w", err)
	}
	return img, format, nil
}

// DecodeBytes decodes an image held in memory.
func DecodeBytes(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Save encodes img to path, choosing PNG or JPEG from the extension.
func Save(path string, img image.Image) error {
	var encode func(io.Writer, image.Image) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = EncodePNG
	case ".jpg", ".jpeg":
		encode = func(w io.Writer, img image.Image) error {
			return EncodeJPEG(w, img, 90)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}
	if err := encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("imageio: close file: %w", err)
	}
	return nil
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("imageio: encode png: %w", err)
	}
	return nil
}

// EncodeJPEG writes img as JPEG with the given quality (1-100).
func EncodeJPEG(w io.Writer, img image.Image, quality int) error {
	quality = min(max(quality, 1), 100)
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("imageio: encode jpeg: %w", err)
	}
	return nil
}
