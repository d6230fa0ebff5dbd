package restaurant

import (
	"context"
	"errors"
	"strings"

	"dishly/internal/food"
	"dishly/internal/geo"
)

// FoodLister lists the food items served by a restaurant.
type FoodLister interface {
	ByRestaurantName(ctx context.Context, name string) ([]food.Food, error)
}

type Service struct {
	repo  Repository
	foods FoodLister
}

func NewService(repo Repository, foods FoodLister) *Service {
	return &Service{repo: repo, foods: foods}
}

// CreateRestaurant registers a restaurant. Known restaurants without
// coordinates get their approximate position.
func (s *Service) CreateRestaurant(ctx context.Context, r *Restaurant) (*Restaurant, error) {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return nil, errors.New("restaurant name is required")
	}

	if r.Lat == nil || r.Lng == nil {
		if c := geo.ApproximateCoordinates(r.Name); c != nil {
			r.Lat, r.Lng = &c.Lat, &c.Lng
		}
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) List(ctx context.Context) ([]*Restaurant, error) {
	return s.repo.List(ctx)
}

// Menu returns the restaurant named name with its food items.
func (s *Service) Menu(ctx context.Context, name string) (*Restaurant, []food.Food, error) {
	r, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, nil, err
	}

	foods, err := s.foods.ByRestaurantName(ctx, r.Name)
	if err != nil {
		return nil, nil, err
	}
	return r, foods, nil
}
