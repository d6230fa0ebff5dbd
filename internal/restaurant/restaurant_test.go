package restaurant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dishly/internal/food"

	"github.com/gin-gonic/gin"
)

// --------------------------------------------------
// Mock Repository
// --------------------------------------------------

type MockRepository struct {
	restaurants []*Restaurant
	createErr   error
}

func (m *MockRepository) Create(ctx context.Context, r *Restaurant) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, existing := range m.restaurants {
		if existing.Name == r.Name {
			return ErrNameTaken
		}
	}

	r.ID = fmt.Sprintf("r%d", len(m.restaurants)+1)
	r.CreatedAt = time.Now()
	m.restaurants = append(m.restaurants, r)
	return nil
}

func (m *MockRepository) List(ctx context.Context) ([]*Restaurant, error) {
	return m.restaurants, nil
}

func (m *MockRepository) FindByName(ctx context.Context, name string) (*Restaurant, error) {
	for _, r := range m.restaurants {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, ErrNotFound
}

type mockFoods map[string][]food.Food

func (m mockFoods) ByRestaurantName(ctx context.Context, name string) ([]food.Food, error) {
	return m[name], nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func TestCreateRestaurant_FillsKnownCoordinates(t *testing.T) {
	svc := NewService(&MockRepository{}, mockFoods{})

	r, err := svc.CreateRestaurant(context.Background(), &Restaurant{Name: " Korea Garden "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.Name != "Korea Garden" {
		t.Fatalf("name not trimmed: %q", r.Name)
	}
	if r.Lat == nil || *r.Lat != 40.4235 || *r.Lng != -86.9065 {
		t.Fatalf("expected table coordinates, got %v %v", r.Lat, r.Lng)
	}
}

func TestCreateRestaurant_KeepsGivenCoordinates(t *testing.T) {
	svc := NewService(&MockRepository{}, mockFoods{})
	lat, lng := 1.5, 2.5

	r, _ := svc.CreateRestaurant(context.Background(), &Restaurant{Name: "Korea Garden", Lat: &lat, Lng: &lng})
	if *r.Lat != 1.5 || *r.Lng != 2.5 {
		t.Fatalf("coordinates overwritten: %v %v", *r.Lat, *r.Lng)
	}
}

func TestCreateRestaurant_Validation(t *testing.T) {
	repo := &MockRepository{}
	svc := NewService(repo, mockFoods{})

	if _, err := svc.CreateRestaurant(context.Background(), &Restaurant{Name: "  "}); err == nil {
		t.Fatal("expected error for blank name")
	}

	repo.createErr = errors.New("db down")
	if _, err := svc.CreateRestaurant(context.Background(), &Restaurant{Name: "X"}); err == nil {
		t.Fatal("expected repository error")
	}
}

func TestMenu(t *testing.T) {
	repo := &MockRepository{}
	svc := NewService(repo, mockFoods{
		"Mad Mushroom": {{ID: "f1", Name: "Garlic Cheese Bread"}},
	})
	svc.CreateRestaurant(context.Background(), &Restaurant{Name: "Mad Mushroom"})

	r, foods, err := svc.Menu(context.Background(), "Mad Mushroom")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Name != "Mad Mushroom" || len(foods) != 1 {
		t.Fatalf("unexpected menu %+v %+v", r, foods)
	}

	if _, _, err := svc.Menu(context.Background(), "Nowhere"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// --------------------------------------------------
// Handlers
// --------------------------------------------------

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewHandler(NewService(&MockRepository{}, mockFoods{
		"Greyhouse Coffee": {{ID: "f9", Name: "Cold Brew"}},
	}))

	r.POST("/restaurants", h.CreateRestaurant)
	r.GET("/restaurants", h.List)
	r.GET("/restaurants/by-name/:name/foods", h.FoodsByName)
	return r
}

func TestHandlers(t *testing.T) {
	r := setupTestRouter()

	create := func(body string) int {
		req := httptest.NewRequest(http.MethodPost, "/restaurants", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := create(`{"name":"Greyhouse Coffee","city":"West Lafayette"}`); code != http.StatusCreated {
		t.Fatalf("create: %d", code)
	}
	if code := create(`{"name":"Greyhouse Coffee"}`); code != http.StatusConflict {
		t.Fatalf("duplicate: %d", code)
	}
	if code := create(`{`); code != http.StatusBadRequest {
		t.Fatalf("bad body: %d", code)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/restaurants", nil))
	var list []Restaurant
	json.Unmarshal(w.Body.Bytes(), &list)
	if len(list) != 1 || *list[0].City != "West Lafayette" {
		t.Fatalf("list: %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/restaurants/by-name/Greyhouse%20Coffee/foods", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Cold Brew") {
		t.Fatalf("menu: %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/restaurants/by-name/Nowhere/foods", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown: %d", w.Code)
	}
}
