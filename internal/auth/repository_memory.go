package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryProfileRepository struct {
	mu       sync.Mutex
	profiles map[string]*Profile
}

func NewInMemoryProfileRepository() *InMemoryProfileRepository {
	return &InMemoryProfileRepository{
		profiles: make(map[string]*Profile),
	}
}

func (r *InMemoryProfileRepository) Create(ctx context.Context, p *Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.profiles[p.Email]; exists {
		return ErrEmailTaken
	}

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = time.Now()

	copied := *p
	r.profiles[p.Email] = &copied
	return nil
}

func (r *InMemoryProfileRepository) FindByEmail(ctx context.Context, email string) (*Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[email]
	if !ok {
		return nil, ErrProfileNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *InMemoryProfileRepository) FindByID(ctx context.Context, id string) (*Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.profiles {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, ErrProfileNotFound
}
