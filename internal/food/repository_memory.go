package food

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository keeps the catalogue in process memory.
type MemoryRepository struct {
	mu      sync.Mutex
	foods   map[string]Food
	reviews []Review
	saved   map[string][]string
}

func NewMemoryRepository(foods ...Food) *MemoryRepository {
	m := &MemoryRepository{
		foods: make(map[string]Food),
		saved: make(map[string][]string),
	}
	for _, f := range foods {
		if f.Tags == nil {
			f.Tags = []string{}
		}
		m.foods[f.ID] = f
	}
	return m
}

// sorted returns the foods matching keep, best rated first.
func (m *MemoryRepository) sorted(keep func(Food) bool) []Food {
	out := []Food{}
	for _, f := range m.foods {
		if keep(f) {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AvgRating != out[j].AvgRating {
			return out[i].AvgRating > out[j].AvgRating
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func limited(foods []Food, limit int) []Food {
	if limit > 0 && len(foods) > limit {
		return foods[:limit]
	}
	return foods
}

func (m *MemoryRepository) ListByTrending(ctx context.Context, trending bool, limit int) ([]Food, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return limited(m.sorted(func(f Food) bool { return f.IsTrending == trending }), limit), nil
}

func (m *MemoryRepository) Search(ctx context.Context, query, tag string, limit int) ([]Food, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	q := strings.ToLower(query)
	return limited(m.sorted(func(f Food) bool {
		matched := strings.Contains(strings.ToLower(f.Name), q) ||
			strings.Contains(strings.ToLower(deref(f.Description)), q) ||
			slices.Contains(f.Tags, query)
		return matched && (tag == "" || slices.Contains(f.Tags, tag))
	}), limit), nil
}

func (m *MemoryRepository) FindByID(ctx context.Context, id string) (*Food, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, ok := m.foods[id]
	if !ok {
		return nil, ErrFoodNotFound
	}
	return &f, nil
}

func (m *MemoryRepository) FindByIDs(ctx context.Context, ids []string) ([]Food, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []Food{}
	for _, id := range ids {
		if f, ok := m.foods[id]; ok {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *MemoryRepository) ListByRestaurantName(ctx context.Context, name string) ([]Food, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.sorted(func(f Food) bool {
		return f.Restaurant != nil && f.Restaurant.Name == name
	}), nil
}

func (m *MemoryRepository) ListReviews(ctx context.Context, foodID string) ([]Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []Review{}
	for i := len(m.reviews) - 1; i >= 0; i-- {
		if m.reviews[i].FoodItemID == foodID {
			out = append(out, m.reviews[i])
		}
	}
	return out, nil
}

func (m *MemoryRepository) AddReview(ctx context.Context, r *Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, ok := m.foods[r.FoodItemID]
	if !ok {
		return ErrFoodNotFound
	}

	r.ID = uuid.New().String()
	r.CreatedAt = time.Now()
	m.reviews = append(m.reviews, *r)

	sum, count := 0, 0
	for _, rv := range m.reviews {
		if rv.FoodItemID == f.ID {
			sum += rv.Rating
			count++
		}
	}
	f.AvgRating = float64(sum) / float64(count)
	f.RatingCount = count
	m.foods[f.ID] = f

	return nil
}

func (m *MemoryRepository) Save(ctx context.Context, userID, foodID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.foods[foodID]; !ok {
		return ErrFoodNotFound
	}
	if !slices.Contains(m.saved[userID], foodID) {
		m.saved[userID] = append(m.saved[userID], foodID)
	}
	return nil
}

func (m *MemoryRepository) Unsave(ctx context.Context, userID, foodID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.saved[userID] = slices.DeleteFunc(m.saved[userID], func(id string) bool { return id == foodID })
	return nil
}

func (m *MemoryRepository) SavedFoods(ctx context.Context, userID string) ([]Food, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []Food{}
	for _, id := range m.saved[userID] {
		if f, ok := m.foods[id]; ok {
			out = append(out, f)
		}
	}
	return out, nil
}
