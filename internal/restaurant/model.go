package restaurant

import "time"

type Restaurant struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     *string   `json:"address"`
	City        *string   `json:"city"`
	State       *string   `json:"state"`
	CuisineType *string   `json:"cuisine_type"`
	Phone       *string   `json:"phone"`
	Lat         *float64  `json:"lat"`
	Lng         *float64  `json:"lng"`
	CreatedAt   time.Time `json:"created_at"`
}
