package food

import (
	"context"
	"errors"
	"strings"
	"testing"

	"dishly/internal/geo"
)

func strPtr(s string) *string { return &s }

func testFoods() []Food {
	korea := &RestaurantSummary{ID: "r1", Name: "Korea Garden", City: strPtr("West Lafayette"), State: strPtr("IN")}
	lat, lng := 40.4519, -86.9111
	mad := &RestaurantSummary{ID: "r2", Name: "Mad Mushroom", Lat: &lat, Lng: &lng}

	return []Food{
		{ID: "f1", Name: "Bibimbap", Description: strPtr("rice bowl"), Tags: []string{"korean", "spicy"}, AvgRating: 4.8, IsTrending: true, Restaurant: korea},
		{ID: "f2", Name: "Bulgogi", Tags: []string{"korean"}, AvgRating: 4.2, Restaurant: korea},
		{ID: "f3", Name: "Garlic Cheese Bread", Description: strPtr("spicy dip"), Tags: []string{"vegetarian"}, AvgRating: 4.5, IsTrending: true, Restaurant: mad},
		{ID: "f4", Name: "Pepperoni Pizza", AvgRating: 3.9, Restaurant: mad},
	}
}

func newTestService(key string) (*Service, *MemoryRepository) {
	repo := NewMemoryRepository(testFoods()...)
	return NewService(repo, geo.Maps{EmbedKey: key}), repo
}

func names(foods []Food) string {
	out := make([]string, len(foods))
	for i, f := range foods {
		out[i] = f.Name
	}
	return strings.Join(out, ",")
}

func TestTrendingAndRecommended(t *testing.T) {
	svc, _ := newTestService("")
	ctx := context.Background()

	trending, _ := svc.Trending(ctx, 0)
	if got := names(trending); got != "Bibimbap,Garlic Cheese Bread" {
		t.Fatalf("trending: %s", got)
	}

	recommended, _ := svc.Recommended(ctx, 1)
	if got := names(recommended); got != "Bulgogi" {
		t.Fatalf("recommended: %s", got)
	}
}

func TestClampLimit(t *testing.T) {
	for in, want := range map[int]int{-1: DefaultListLimit, 0: DefaultListLimit, 7: 7, 500: MaxListLimit} {
		if got := clampLimit(in); got != want {
			t.Errorf("clampLimit(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestSearch(t *testing.T) {
	svc, _ := newTestService("")
	ctx := context.Background()

	if res, _ := svc.Search(ctx, "   ", ""); len(res) != 0 {
		t.Fatalf("blank query should return nothing, got %s", names(res))
	}

	res, _ := svc.Search(ctx, "spicy", "")
	if got := names(res); got != "Bibimbap,Garlic Cheese Bread" {
		t.Fatalf("name/description/tag match: %s", got)
	}

	res, _ = svc.Search(ctx, "spicy", "Vegetarian")
	if got := names(res); got != "Garlic Cheese Bread" {
		t.Fatalf("tag filter: %s", got)
	}

	res, _ = svc.Search(ctx, "BUL", "All")
	if got := names(res); got != "Bulgogi" {
		t.Fatalf("case-insensitive, all filter: %s", got)
	}
}

func TestBatch_KeepsRequestOrder(t *testing.T) {
	svc, _ := newTestService("")

	foods, err := svc.Batch(context.Background(), []string{"f4", "missing", "f1", "f4"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := names(foods); got != "Pepperoni Pizza,Bibimbap" {
		t.Fatalf("got %s", got)
	}
}

func TestDetail(t *testing.T) {
	svc, _ := newTestService("K")
	ctx := context.Background()

	if _, err := svc.Detail(ctx, "nope", nil); !errors.Is(err, ErrFoodNotFound) {
		t.Fatalf("expected ErrFoodNotFound, got %v", err)
	}

	d, err := svc.Detail(ctx, "f1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Location == nil || d.Location.Lat != 40.4235 {
		t.Fatalf("expected table coordinates, got %+v", d.Location)
	}
	if d.DistanceMiles != nil {
		t.Fatal("distance without origin")
	}
	if d.Maps.Directions != "https://www.google.com/maps/dir/?api=1&destination=Korea%20Garden%2C%20West%20Lafayette%2C%20IN" {
		t.Fatalf("directions: %s", d.Maps.Directions)
	}
	if !strings.Contains(d.Maps.EmbedDirections, "/embed/v1/search?") {
		t.Fatalf("expected search fallback without origin: %s", d.Maps.EmbedDirections)
	}

	origin := geo.LatLng{Lat: 40.4235, Lng: -86.9065}
	d, _ = svc.Detail(ctx, "f3", &origin)
	if d.Location.Lat != 40.4519 {
		t.Fatalf("stored coordinates should win, got %+v", d.Location)
	}
	if d.DistanceMiles == nil || *d.DistanceMiles < 1 || *d.DistanceMiles > 3 {
		t.Fatalf("unexpected distance %v", d.DistanceMiles)
	}
	if !strings.Contains(d.Maps.EmbedDirections, "origin=40.4235%2C-86.9065") {
		t.Fatalf("directions embed: %s", d.Maps.EmbedDirections)
	}
}

func TestDetail_NoEmbedKey(t *testing.T) {
	svc, _ := newTestService("")

	d, _ := svc.Detail(context.Background(), "f2", nil)
	if d.Maps.EmbedPlace != "" || d.Maps.EmbedDirections != "" {
		t.Fatalf("embeds need a key: %+v", d.Maps)
	}
	if d.Maps.Directions == "" {
		t.Fatal("directions link needs no key")
	}
}

func TestAddReview(t *testing.T) {
	svc, repo := newTestService("")
	ctx := context.Background()

	for _, bad := range []int{0, 6} {
		if _, err := svc.AddReview(ctx, "f2", "dev_1", bad, ""); !errors.Is(err, ErrInvalidRating) {
			t.Fatalf("rating %d: expected ErrInvalidRating, got %v", bad, err)
		}
	}

	if _, err := svc.AddReview(ctx, "missing", "dev_1", 5, ""); !errors.Is(err, ErrFoodNotFound) {
		t.Fatalf("expected ErrFoodNotFound, got %v", err)
	}

	first, err := svc.AddReview(ctx, "f2", "dev_1", 5, "  great  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Text == nil || *first.Text != "great" {
		t.Fatalf("text not trimmed: %+v", first.Text)
	}

	second, _ := svc.AddReview(ctx, "f2", "dev_2", 2, " ")
	if second.Text != nil {
		t.Fatal("blank text should be stored as null")
	}

	f, _ := repo.FindByID(ctx, "f2")
	if f.RatingCount != 2 || f.AvgRating != 3.5 {
		t.Fatalf("aggregates not refreshed: %v / %d", f.AvgRating, f.RatingCount)
	}

	reviews, _ := svc.Reviews(ctx, "f2")
	if len(reviews) != 2 || reviews[0].ID != second.ID {
		t.Fatalf("expected newest first, got %+v", reviews)
	}
}

func TestSaved(t *testing.T) {
	svc, _ := newTestService("")
	ctx := context.Background()

	if err := svc.Save(ctx, "dev_1", "missing"); !errors.Is(err, ErrFoodNotFound) {
		t.Fatalf("expected ErrFoodNotFound, got %v", err)
	}

	svc.Save(ctx, "dev_1", "f3")
	svc.Save(ctx, "dev_1", "f1")
	svc.Save(ctx, "dev_1", "f3")
	svc.Save(ctx, "dev_2", "f2")

	saved, _ := svc.Saved(ctx, "dev_1")
	if got := names(saved); got != "Garlic Cheese Bread,Bibimbap" {
		t.Fatalf("got %s", got)
	}

	svc.Unsave(ctx, "dev_1", "f3")
	saved, _ = svc.Saved(ctx, "dev_1")
	if got := names(saved); got != "Bibimbap" {
		t.Fatalf("after unsave: %s", got)
	}
}

func TestMapForFoods(t *testing.T) {
	svc, _ := newTestService("K")

	got := svc.MapForFoods(testFoods()[:2])
	want := "https://www.google.com/maps/embed/v1/search?key=K&q=Bibimbap%20Korea%20Garden%20West%20Lafayette%20IN%2C%20Bulgogi%20Korea%20Garden%20West%20Lafayette%20IN&zoom=13"
	if got != want {
		t.Fatalf("got %s", got)
	}
}
