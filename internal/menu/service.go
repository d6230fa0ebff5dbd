package menu

import (
	"context"
	"fmt"
	"mime/multipart"

	"dishly/internal/extract"
	"dishly/internal/upload"
)

const HistoryLimit = 50

type Submitter interface {
	Submit(ctx context.Context, sub upload.Submission) (*extract.Result, error)
}

type Service struct {
	uploader Submitter
	repo     Repository
}

func NewService(uploader Submitter, repo Repository) *Service {
	return &Service{uploader: uploader, repo: repo}
}

// UploadMenu stores the file and runs extraction on it.
func (s *Service) UploadMenu(
	ctx context.Context,
	restaurant string,
	header *multipart.FileHeader,
	userID string,
) (*extract.Result, error) {

	contentType, err := ValidateMenuFile(header)
	if err != nil {
		return nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open menu file: %w", err)
	}
	defer file.Close()

	return s.uploader.Submit(ctx, upload.Submission{
		Restaurant:  restaurant,
		Filename:    header.Filename,
		ContentType: contentType,
		Body:        file,
		UploadedBy:  userID,
	})
}

func (s *Service) History(ctx context.Context, userID string) ([]Upload, error) {
	return s.repo.ListByUser(ctx, userID, HistoryLimit)
}
