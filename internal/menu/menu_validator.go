package menu

import (
	"errors"
	"mime/multipart"

	"dishly/internal/upload"
)

// MaxMenuFileBytes bounds a single menu upload.
const MaxMenuFileBytes = 20 << 20

var ErrFileTooLarge = errors.New("menu file exceeds 20MB")

// ValidateMenuFile checks size and type of an uploaded menu file and
// returns its content type.
func ValidateMenuFile(header *multipart.FileHeader) (string, error) {
	if header.Size > MaxMenuFileBytes {
		return "", ErrFileTooLarge
	}
	return upload.ResolveContentType(header.Filename, header.Header.Get("Content-Type"))
}
