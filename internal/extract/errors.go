package extract

import (
	"errors"
	"net/http"

	"dishly/internal/llm"
	"dishly/internal/storage"

	"github.com/gin-gonic/gin"
)

var (
	ErrMissingParameter  = errors.New("missing bucket/path/restaurant")
	ErrUnknownBucket     = errors.New("bucket not allowed")
	ErrConfiguration     = errors.New("missing server environment config")
	ErrSigning           = errors.New("failed to sign file URL")
	ErrExtractionService = errors.New("extraction service error")
	ErrRestaurantUpsert  = errors.New("failed to upsert restaurant")
)

// Error pairs a taxonomy kind with the upstream detail that caused it.
type Error struct {
	Kind    error
	Details string
	Err     error
}

func (e *Error) Error() string {
	if e.Details == "" {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Details
}

func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func wrap(kind error, err error) *Error {
	e := &Error{Kind: kind, Err: err}
	if err != nil {
		e.Details = err.Error()
	}

	var svcErr *llm.ServiceError
	if errors.As(err, &svcErr) {
		e.Details = svcErr.Body
	}
	return e
}

// HTTPStatus maps an error from this package (or the upload path) onto a
// response code.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrMissingParameter), errors.Is(err, ErrUnknownBucket):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrDuplicatePath):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ErrorBody renders err as the JSON error envelope.
func ErrorBody(err error) gin.H {
	body := gin.H{"error": err.Error()}

	var e *Error
	if errors.As(err, &e) {
		body["error"] = e.Kind.Error()
		if e.Details != "" {
			body["details"] = e.Details
		}
	}

	var svcErr *llm.ServiceError
	if errors.As(err, &svcErr) {
		body["status"] = svcErr.Status
	}

	return body
}
