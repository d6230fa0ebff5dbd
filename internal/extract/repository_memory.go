package extract

import (
	"context"
	"strconv"
	"sync"
)

type memoryFood struct {
	FoodItemUpsert
	ID string
}

// MemoryRepository keeps restaurants and food items in maps with the same
// uniqueness rules as the Postgres schema.
type MemoryRepository struct {
	mu          sync.Mutex
	restaurants map[string]*Restaurant
	foods       map[string]*memoryFood
	uploads     []UploadRecord
	nextID      int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		restaurants: make(map[string]*Restaurant),
		foods:       make(map[string]*memoryFood),
		nextID:      1,
	}
}

func (m *MemoryRepository) FindOrCreateRestaurant(ctx context.Context, name string) (*Restaurant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if r, ok := m.restaurants[name]; ok {
		copied := *r
		return &copied, nil
	}

	r := &Restaurant{ID: m.newID("r"), Name: name}
	m.restaurants[name] = r

	copied := *r
	return &copied, nil
}

func (m *MemoryRepository) UpsertFoodItem(ctx context.Context, item FoodItemUpsert) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := item.CanonicalName + "|" + item.RestaurantID

	if existing, ok := m.foods[key]; ok {
		existing.Name = item.Name
		existing.Description = item.Description
		existing.Tags = item.Tags
		existing.Price = item.Price
		return false, nil
	}

	m.foods[key] = &memoryFood{FoodItemUpsert: item, ID: m.newID("f")}
	return true, nil
}

func (m *MemoryRepository) RecordUpload(ctx context.Context, rec UploadRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.uploads = append(m.uploads, rec)
	return nil
}

// FoodItems returns a snapshot of every stored food row.
func (m *MemoryRepository) FoodItems() []FoodItemUpsert {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]FoodItemUpsert, 0, len(m.foods))
	for _, f := range m.foods {
		out = append(out, f.FoodItemUpsert)
	}
	return out
}

func (m *MemoryRepository) Restaurants() []Restaurant {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Restaurant, 0, len(m.restaurants))
	for _, r := range m.restaurants {
		out = append(out, *r)
	}
	return out
}

func (m *MemoryRepository) Uploads() []UploadRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]UploadRecord(nil), m.uploads...)
}

func (m *MemoryRepository) newID(prefix string) string {
	id := prefix + strconv.Itoa(m.nextID)
	m.nextID++
	return id
}
