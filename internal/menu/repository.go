package menu

import "context"

// Repository reads the menu upload history.
type Repository interface {
	ListByUser(ctx context.Context, userID string, limit int) ([]Upload, error)
}
