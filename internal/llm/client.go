package llm

import (
	"context"
	"fmt"
)

// Temperature used for every extraction request. Kept low so repeated
// uploads of the same menu produce the same items.
const Temperature = 0.2

// Extractor turns a menu image reference into the model's raw text answer.
// The answer is expected, not guaranteed, to be the JSON object described by
// BuildMenuExtractionPrompt.
type Extractor interface {
	ExtractMenu(ctx context.Context, imageURL string) (string, error)
}

// ServiceError is a non-2xx answer from a completion API.
type ServiceError struct {
	Provider string
	Status   int
	Body     string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s api error (status %d): %s", e.Provider, e.Status, e.Body)
}
