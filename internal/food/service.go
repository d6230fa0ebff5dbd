package food

import (
	"context"
	"errors"
	"strings"

	"dishly/internal/geo"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type Service struct {
	repo Repository
	maps geo.Maps
}

func NewService(repo Repository, maps geo.Maps) *Service {
	return &Service{repo: repo, maps: maps}
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}

func (s *Service) Trending(ctx context.Context, limit int) ([]Food, error) {
	return s.repo.ListByTrending(ctx, true, clampLimit(limit))
}

// Recommended is the best rated food that is not already trending.
func (s *Service) Recommended(ctx context.Context, limit int) ([]Food, error) {
	return s.repo.ListByTrending(ctx, false, clampLimit(limit))
}

// Search matches query against names, descriptions and tags. A tag of ""
// or "all" applies no filter.
func (s *Service) Search(ctx context.Context, query, tag string) ([]Food, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []Food{}, nil
	}

	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "all" {
		tag = ""
	}

	return s.repo.Search(ctx, query, tag, SearchLimit)
}

// Batch returns the foods for ids in the order given, skipping unknown ids.
func (s *Service) Batch(ctx context.Context, ids []string) ([]Food, error) {
	foods, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]Food, len(foods))
	for _, f := range foods {
		byID[f.ID] = f
	}

	out := make([]Food, 0, len(foods))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if f, ok := byID[id]; ok && !seen[id] {
			out = append(out, f)
			seen[id] = true
		}
	}
	return out, nil
}

func (s *Service) ByRestaurantName(ctx context.Context, name string) ([]Food, error) {
	return s.repo.ListByRestaurantName(ctx, name)
}

// Detail assembles the food page. When origin is set the distance from it
// is included and the directions embed starts there.
func (s *Service) Detail(ctx context.Context, id string, origin *geo.LatLng) (*Detail, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.repo.ListReviews(ctx, id)
	if err != nil {
		return nil, err
	}

	d := &Detail{
		Food:     *f,
		Reviews:  reviews,
		Location: location(f.Restaurant),
	}

	if origin != nil && d.Location != nil {
		miles := geo.HaversineMiles(*origin, *d.Location)
		d.DistanceMiles = &miles
	}

	d.Maps = s.mapLinks(*f, origin)
	return d, nil
}

// location prefers stored coordinates over the approximate table.
func location(r *RestaurantSummary) *geo.LatLng {
	if r == nil {
		return nil
	}
	if r.Lat != nil && r.Lng != nil {
		return &geo.LatLng{Lat: *r.Lat, Lng: *r.Lng}
	}
	return geo.ApproximateCoordinates(r.Name)
}

func (s *Service) mapLinks(f Food, origin *geo.LatLng) MapLinks {
	var name, address, city, state string
	if r := f.Restaurant; r != nil {
		name, address, city, state = r.Name, deref(r.Address), deref(r.City), deref(r.State)
	}

	destination := strings.Join(nonEmpty(name, city, state), ", ")

	return MapLinks{
		Directions:      geo.DirectionsLink(name, address, city, state),
		EmbedPlace:      s.maps.EmbedPlaceURL(destination, geo.DefaultZoom),
		EmbedDirections: s.maps.EmbedDirectionsURL(origin, destination, "driving"),
	}
}

// MapForFoods is a single search embed covering every food in the list.
func (s *Service) MapForFoods(foods []Food) string {
	places := make([]geo.Place, 0, len(foods))
	for _, f := range foods {
		places = append(places, f.Place())
	}
	return s.maps.EmbedSearchForFoods(places)
}

func (s *Service) Reviews(ctx context.Context, foodID string) ([]Review, error) {
	if _, err := s.repo.FindByID(ctx, foodID); err != nil {
		return nil, err
	}
	return s.repo.ListReviews(ctx, foodID)
}

func (s *Service) AddReview(ctx context.Context, foodID, userID string, rating int, text string) (*Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	r := &Review{
		FoodItemID: foodID,
		UserID:     userID,
		Rating:     rating,
	}
	if t := strings.TrimSpace(text); t != "" {
		r.Text = &t
	}

	if err := s.repo.AddReview(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) Save(ctx context.Context, userID, foodID string) error {
	return s.repo.Save(ctx, userID, foodID)
}

func (s *Service) Unsave(ctx context.Context, userID, foodID string) error {
	return s.repo.Unsave(ctx, userID, foodID)
}

func (s *Service) Saved(ctx context.Context, userID string) ([]Food, error) {
	return s.repo.SavedFoods(ctx, userID)
}

func nonEmpty(parts ...string) []string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
