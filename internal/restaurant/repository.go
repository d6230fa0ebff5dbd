package restaurant

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("restaurant not found")
	ErrNameTaken = errors.New("restaurant already exists")
)

type Repository interface {
	Create(ctx context.Context, r *Restaurant) error
	List(ctx context.Context) ([]*Restaurant, error)
	FindByName(ctx context.Context, name string) (*Restaurant, error)
}
