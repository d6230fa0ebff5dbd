package upload

import (
	"context"
	"io"
	"time"

	"dishly/internal/extract"
	"dishly/internal/storage"

	"github.com/sirupsen/logrus"
)

type Storage interface {
	PutIfAbsent(ctx context.Context, bucket, key, contentType string, body io.Reader) error
}

// Invoker runs the extraction function for a stored file.
type Invoker interface {
	Invoke(ctx context.Context, req extract.Request) (*extract.Result, error)
}

// Submission is one menu file picked by a user.
type Submission struct {
	Restaurant  string
	Filename    string
	ContentType string
	Body        io.Reader
	UploadedBy  string
}

type Uploader struct {
	storage Storage
	invoker Invoker
	bucket  string
	now     func() time.Time
}

func NewUploader(store Storage, invoker Invoker) *Uploader {
	return &Uploader{
		storage: store,
		invoker: invoker,
		bucket:  storage.MenuBucket,
		now:     time.Now,
	}
}

// Submit stores the file without overwrite and then invokes extraction,
// returning its result unchanged. A failed upload is returned as is and
// extraction is not attempted. Nothing is retried.
func (u *Uploader) Submit(ctx context.Context, sub Submission) (*extract.Result, error) {
	contentType, err := ResolveContentType(sub.Filename, sub.ContentType)
	if err != nil {
		return nil, err
	}

	path, err := BuildPath(sub.Restaurant, sub.Filename, u.now())
	if err != nil {
		return nil, err
	}

	if err := u.storage.PutIfAbsent(ctx, u.bucket, path, contentType, sub.Body); err != nil {
		logrus.WithError(err).WithField("path", path).Error("menu upload failed")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"bucket":     u.bucket,
		"path":       path,
		"restaurant": sub.Restaurant,
	}).Info("menu uploaded, invoking extraction")

	return u.invoker.Invoke(ctx, extract.Request{
		Bucket:     u.bucket,
		Path:       path,
		Restaurant: sub.Restaurant,
		UploadedBy: sub.UploadedBy,
	})
}
