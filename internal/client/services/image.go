package services

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// MaxImageSize bounds the file a user can attach; the data URI is kept
// inline in the recipe collection.
const MaxImageSize = 5 << 20

var ErrImageTooLarge = errors.New("image too large")

// EncodeImage returns data as a base64 data URI with a sniffed media type.
func EncodeImage(data []byte) string {
	mime := http.DetectContentType(data)
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// EncodeImageFile reads path and encodes it with EncodeImage.
func EncodeImageFile(path string) (string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if fi.Size() > MaxImageSize {
		return "", fmt.Errorf("%w: %d bytes", ErrImageTooLarge, fi.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	return EncodeImage(data), nil
}
