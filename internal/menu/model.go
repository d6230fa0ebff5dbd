package menu

import "time"

// Upload is one processed menu file as recorded in menu_uploads.
type Upload struct {
	ID             int        `json:"id"`
	RestaurantName string     `json:"restaurant_name"`
	MenuImageURL   string     `json:"menu_image_url"`
	Status         string     `json:"status"`
	ItemCount      int        `json:"item_count"`
	PointsAwarded  int        `json:"points_awarded"`
	FailureReason  *string    `json:"failure_reason,omitempty"`
	ProcessedAt    *time.Time `json:"processed_at"`
	CreatedAt      time.Time  `json:"created_at"`
}
