package extract

import "context"

// Repository is the persistence the extraction pipeline depends on.
type Repository interface {
	// FindOrCreateRestaurant looks a restaurant up by exact name and
	// inserts it with only the name set when absent.
	FindOrCreateRestaurant(ctx context.Context, name string) (*Restaurant, error)

	// UpsertFoodItem inserts or updates the row keyed on
	// (canonical name, restaurant id) and reports whether it inserted.
	UpsertFoodItem(ctx context.Context, item FoodItemUpsert) (inserted bool, err error)

	// RecordUpload writes the menu_uploads audit row.
	RecordUpload(ctx context.Context, rec UploadRecord) error
}
