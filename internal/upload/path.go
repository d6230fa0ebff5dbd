package upload

import (
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"dishly/internal/extract"
	"dishly/internal/textnorm"
)

var ErrUnsupportedFile = errors.New("menu file must be an image or a PDF")

// BuildPath derives the storage key of a menu file:
// slug(restaurant)/slug(restaurant)-<unix millis>-<filename>.
func BuildPath(restaurant, filename string, now time.Time) (string, error) {
	if strings.TrimSpace(restaurant) == "" {
		return "", extract.ErrMissingParameter
	}

	// drop any client-side directories
	name := filename
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	if strings.TrimSpace(name) == "" {
		return "", extract.ErrMissingParameter
	}

	slug := textnorm.Slug(restaurant)
	return fmt.Sprintf("%s/%s-%d-%s", slug, slug, now.UnixMilli(), name), nil
}

// ResolveContentType returns the media type of the file, guessing from the
// extension when the client sent none, and rejects anything that is not an
// image or a PDF.
func ResolveContentType(filename, contentType string) (string, error) {
	ct := strings.TrimSpace(contentType)
	if ct == "" || ct == "application/octet-stream" {
		ct = mime.TypeByExtension(strings.ToLower(filepath.Ext(filename)))
	}

	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return "", ErrUnsupportedFile
	}

	if strings.HasPrefix(mediaType, "image/") || mediaType == "application/pdf" {
		return mediaType, nil
	}

	return "", ErrUnsupportedFile
}
