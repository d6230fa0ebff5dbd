package extract

import "time"

// Request is the body of the extraction entry point.
type Request struct {
	Bucket     string `json:"bucket"`
	Path       string `json:"path"`
	Restaurant string `json:"restaurant"`

	// UploadedBy is taken from the caller's identity, never from the body.
	UploadedBy string `json:"-"`
}

// Item is one normalized menu entry produced from the model output.
type Item struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Section     *string  `json:"section"`
	Tags        []string `json:"tags"`
}

type Counts struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
}

// Result is the success envelope returned to the caller.
type Result struct {
	OK         bool   `json:"ok"`
	FileURL    string `json:"fileUrl"`
	Restaurant string `json:"restaurant"`
	Counts     Counts `json:"counts"`
	Total      int    `json:"total"`
}

type Restaurant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FoodItemUpsert is the row written for each item, keyed on
// (CanonicalName, RestaurantID).
type FoodItemUpsert struct {
	Name          string
	CanonicalName string
	RestaurantID  string
	Description   *string
	Price         *float64
	Tags          []string
}

const (
	UploadProcessed = "PROCESSED"
	UploadFailed    = "FAILED"

	// PointsPerNewDish is credited to the uploader for every inserted item.
	PointsPerNewDish = 10
)

// UploadRecord is the audit row kept in menu_uploads.
type UploadRecord struct {
	UserID         string
	RestaurantName string
	MenuImageURL   string
	Status         string
	ItemCount      int
	PointsAwarded  int
	Reason         string
	ProcessedAt    time.Time
}
