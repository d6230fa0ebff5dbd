package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dishly/internal/auth"
	"dishly/internal/extract"
	"dishly/internal/food"
	"dishly/internal/geo"
	"dishly/internal/menu"
	"dishly/internal/restaurant"
	"dishly/internal/storage"
	"dishly/internal/upload"

	"github.com/gin-gonic/gin"
)

type emptyRestaurants struct{}

func (emptyRestaurants) Create(ctx context.Context, r *restaurant.Restaurant) error { return nil }
func (emptyRestaurants) List(ctx context.Context) ([]*restaurant.Restaurant, error) {
	return []*restaurant.Restaurant{}, nil
}
func (emptyRestaurants) FindByName(ctx context.Context, name string) (*restaurant.Restaurant, error) {
	return nil, restaurant.ErrNotFound
}

type emptyHistory struct{}

func (emptyHistory) ListByUser(ctx context.Context, userID string, limit int) ([]menu.Upload, error) {
	return []menu.Upload{}, nil
}

type silentModel struct{}

func (silentModel) ExtractMenu(ctx context.Context, imageURL string) (string, error) {
	return `{"items":[]}`, nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	foodService := food.NewService(food.NewMemoryRepository(), geo.Maps{})
	store := storage.NewMemoryStore()
	extractService := extract.NewService(extract.Config{}, store, silentModel{}, extract.NewMemoryRepository())

	return NewRouter(Handlers{
		Auth:        auth.NewHandler(auth.NewService(auth.NewInMemoryProfileRepository())),
		Foods:       food.NewHandler(foodService),
		Restaurants: restaurant.NewHandler(restaurant.NewService(emptyRestaurants{}, foodService)),
		Menus: menu.NewHandler(menu.NewService(
			upload.NewUploader(store, upload.LocalInvoker{Extractor: extractService}),
			emptyHistory{},
		)),
		Extract: extract.NewHandler(extractService),
	}, []string{"http://localhost:5173"})
}

func TestHealthCheck(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestRoutes_Identity(t *testing.T) {
	r := newTestRouter()

	cases := []struct {
		method, path, device string
		want                 int
	}{
		{http.MethodGet, "/foods/trending", "", http.StatusOK},
		{http.MethodGet, "/restaurants", "", http.StatusOK},
		{http.MethodGet, "/saved", "", http.StatusUnauthorized},
		{http.MethodGet, "/saved", "dev_1", http.StatusOK},
		{http.MethodGet, "/menus/uploads", "dev_1", http.StatusOK},
		{http.MethodGet, "/profiles/me", "dev_1", http.StatusUnauthorized},
		{http.MethodPost, "/restaurants", "dev_1", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		if tc.device != "" {
			req.Header.Set("X-Device-ID", tc.device)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != tc.want {
			t.Errorf("%s %s (device %q): expected %d, got %d", tc.method, tc.path, tc.device, tc.want, w.Code)
		}
	}
}

func TestMenuScraper_Misconfigured(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/functions/menu-scraper",
		strings.NewReader(`{"bucket":"menus","path":"a/b.png","restaurant":"A"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for missing server config, got %d", w.Code)
	}
}

func TestCORS_AllowsDeviceHeader(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/foods/trending", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "GET")
	req.Header.Set("Access-Control-Request-Headers", "X-Device-ID")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected preflight 204, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
		t.Fatalf("origin not allowed: %v", w.Header())
	}
}
