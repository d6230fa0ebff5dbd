package device

import "time"

// LocalReview is a review kept on the device only.
type LocalReview struct {
	ID         string    `json:"id"`
	FoodItemID string    `json:"food_item_id"`
	UserID     string    `json:"user_id"`
	Rating     int       `json:"rating"`
	Text       *string   `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

func (s *Store) localReviews() ([]LocalReview, error) {
	return readJSON[[]LocalReview](s, LocalReviewsKey)
}

// AddLocalReview stores a review authored by this device, newest first.
func (s *Store) AddLocalReview(foodID string, rating int, text *string) (*LocalReview, error) {
	deviceID, err := s.DeviceID()
	if err != nil {
		return nil, err
	}

	list, err := s.localReviews()
	if err != nil {
		return nil, err
	}

	now := s.now()
	review := LocalReview{
		ID:         "lr_" + base36(now.UnixMilli()),
		FoodItemID: foodID,
		UserID:     deviceID,
		Rating:     rating,
		Text:       text,
		CreatedAt:  now.UTC(),
	}

	list = append([]LocalReview{review}, list...)
	if err := s.writeJSON(LocalReviewsKey, list); err != nil {
		return nil, err
	}

	return &review, nil
}

func (s *Store) LocalReviewsByFood(foodID string) ([]LocalReview, error) {
	return s.filterReviews(func(r LocalReview) bool { return r.FoodItemID == foodID })
}

// LocalReviewsByUser lists reviews by userID, or by this device when
// userID is blank.
func (s *Store) LocalReviewsByUser(userID string) ([]LocalReview, error) {
	if userID == "" {
		id, err := s.DeviceID()
		if err != nil {
			return nil, err
		}
		userID = id
	}
	return s.filterReviews(func(r LocalReview) bool { return r.UserID == userID })
}

func (s *Store) filterReviews(keep func(LocalReview) bool) ([]LocalReview, error) {
	list, err := s.localReviews()
	if err != nil {
		return nil, err
	}

	out := []LocalReview{}
	for _, r := range list {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out, nil
}
