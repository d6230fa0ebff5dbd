package geo

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	embedBase      = "https://www.google.com/maps/embed/v1"
	directionsBase = "https://www.google.com/maps/dir/?api=1&destination="

	DefaultZoom = 15
)

// Place is what the map builders need to know about a food's location.
type Place struct {
	FoodName   string
	Restaurant string
	City       string
	State      string
}

// Maps builds Google Maps links. The embed builders return "" when no
// embed key is configured.
type Maps struct {
	EmbedKey string
}

func (m Maps) key() string {
	return strings.TrimSpace(m.EmbedKey)
}

// encodeComponent escapes like JavaScript's encodeURIComponent.
func encodeComponent(s string) string {
	return componentReplacer.Replace(url.QueryEscape(s))
}

var componentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func (m Maps) EmbedPlaceURL(query string, zoom int) string {
	key := m.key()
	if key == "" {
		return ""
	}
	if zoom == 0 {
		zoom = DefaultZoom
	}
	return fmt.Sprintf("%s/search?key=%s&q=%s&zoom=%d", embedBase, key, encodeComponent(query), zoom)
}

// EmbedSearchForFoods builds one search embed covering every place.
func (m Maps) EmbedSearchForFoods(places []Place) string {
	key := m.key()
	if key == "" {
		return ""
	}

	var terms []string
	for _, p := range places {
		if term := joinNonEmpty(" ", p.FoodName, p.Restaurant, p.City, p.State); term != "" {
			terms = append(terms, term)
		}
	}

	return fmt.Sprintf("%s/search?key=%s&q=%s&zoom=13", embedBase, key, encodeComponent(strings.Join(terms, ", ")))
}

// DirectionsLink is a plain maps link and needs no key.
func DirectionsLink(parts ...string) string {
	return directionsBase + encodeComponent(joinNonEmpty(", ", parts...))
}

// EmbedDirectionsURL falls back to a search embed of destination when the
// origin is unknown.
func (m Maps) EmbedDirectionsURL(origin *LatLng, destination, mode string) string {
	key := m.key()
	if key == "" || destination == "" {
		return ""
	}
	if mode == "" {
		mode = "driving"
	}

	dest := encodeComponent(destination)
	if origin == nil {
		return fmt.Sprintf("%s/search?key=%s&q=%s", embedBase, key, dest)
	}

	o := formatCoord(origin.Lat) + "," + formatCoord(origin.Lng)
	return fmt.Sprintf("%s/directions?key=%s&origin=%s&destination=%s&mode=%s",
		embedBase, key, encodeComponent(o), dest, mode)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
