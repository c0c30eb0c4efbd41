package uploads

import (
	"fmt"
	"io"

	"carmarket-bff/internal/marketerrors"

	"github.com/gabriel-vasile/mimetype"
)

// allowedImages maps accepted MIME types to their file extension
var allowedImages = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
	"image/bmp":  "bmp",
}

// CheckImage reports whether mime is an accepted image type and its extension
func CheckImage(mime string) (string, bool) {
	ext, ok := allowedImages[mime]
	return ext, ok
}

// ReadImage reads at most maxBytes from r and sniffs the content type.
// Oversized input fails with *ReachLimitError, anything that is not an accepted image with ErrUnsupportedImg.
func ReadImage(r io.Reader, maxBytes int64) ([]byte, string, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	data, err := io.ReadAll(NewMaxSizeReader(r, maxBytes))
	if err != nil {
		return nil, "", fmt.Errorf("uploads: read image: %w", err)
	}

	mime := mimetype.Detect(data).String()
	if _, ok := CheckImage(mime); !ok {
		return nil, "", fmt.Errorf("uploads: %w - detected %s", marketerrors.ErrUnsupportedImg, mime)
	}
	return data, mime, nil
}
