package food

import (
	"context"
	"errors"
)

var ErrFoodNotFound = errors.New("food item not found")

type Repository interface {
	ListByTrending(ctx context.Context, trending bool, limit int) ([]Food, error)
	Search(ctx context.Context, query, tag string, limit int) ([]Food, error)
	FindByID(ctx context.Context, id string) (*Food, error)
	FindByIDs(ctx context.Context, ids []string) ([]Food, error)
	ListByRestaurantName(ctx context.Context, name string) ([]Food, error)

	ListReviews(ctx context.Context, foodID string) ([]Review, error)
	// AddReview stores r and refreshes the food's rating aggregates in the
	// same transaction.
	AddReview(ctx context.Context, r *Review) error

	Save(ctx context.Context, userID, foodID string) error
	Unsave(ctx context.Context, userID, foodID string) error
	SavedFoods(ctx context.Context, userID string) ([]Food, error)
}
