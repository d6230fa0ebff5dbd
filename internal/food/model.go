package food

import (
	"time"

	"dishly/internal/geo"
)

// RestaurantSummary is the restaurant embedded in food responses.
type RestaurantSummary struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Address *string  `json:"address,omitempty"`
	City    *string  `json:"city,omitempty"`
	State   *string  `json:"state,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

type Food struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	CanonicalName string             `json:"canonical_name"`
	Description   *string            `json:"description"`
	ImageURL      *string            `json:"image_url"`
	Price         *float64           `json:"price"`
	Tags          []string           `json:"tags"`
	AvgRating     float64            `json:"avg_rating"`
	RatingCount   int                `json:"rating_count"`
	IsTrending    bool               `json:"is_trending"`
	Restaurant    *RestaurantSummary `json:"restaurant"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// Place describes the food for the map link builders.
func (f Food) Place() geo.Place {
	p := geo.Place{FoodName: f.Name}
	if r := f.Restaurant; r != nil {
		p.Restaurant = r.Name
		p.City = deref(r.City)
		p.State = deref(r.State)
	}
	return p
}

type Review struct {
	ID         string    `json:"id"`
	FoodItemID string    `json:"food_item_id"`
	UserID     string    `json:"user_id"`
	Rating     int       `json:"rating"`
	Text       *string   `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

type MapLinks struct {
	Directions      string `json:"directions"`
	EmbedPlace      string `json:"embed_place,omitempty"`
	EmbedDirections string `json:"embed_directions,omitempty"`
}

// Detail is the food page: the item, its reviews and where to find it.
type Detail struct {
	Food
	Reviews       []Review    `json:"reviews"`
	Location      *geo.LatLng `json:"location"`
	DistanceMiles *float64    `json:"distance_miles,omitempty"`
	Maps          MapLinks    `json:"maps"`
}

const (
	DefaultListLimit = 4
	MaxListLimit     = 50
	SearchLimit      = 20

	// PointsPerReview is credited to a profile for every review it writes.
	PointsPerReview = 5
)

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
