package geo

import "math"

const earthRadiusMiles = 3958.8

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// West Lafayette, used for restaurants without a known position.
var DefaultLocation = LatLng{Lat: 40.4259, Lng: -86.9081}

var restaurantCoords = map[string]LatLng{
	"Triple XXX Family Restaurant": {Lat: 40.42297350068717, Lng: -86.90548536943183},
	"Nine Irish Brothers":          {Lat: 40.42468122524351, Lng: -86.9038768333952},
	"Mad Mushroom":                 {Lat: 40.451877159902715, Lng: -86.91113439325389},
	"Greyhouse Coffee":             {Lat: 40.42478855048751, Lng: -86.90776943419942},
	"Bruno's Swiss Inn":            {Lat: 40.4189, Lng: -86.8842},
	"Harry's Chocolate Shop":       {Lat: 40.423955956810666, Lng: -86.90904611850605},
	"Puccini's Smiling Teeth":      {Lat: 40.4156, Lng: -86.8683},
	"Korea Garden":                 {Lat: 40.4235, Lng: -86.9065},
}

// ApproximateCoordinates returns the known position of a restaurant, or
// DefaultLocation for one not in the table. Blank names have no position.
func ApproximateCoordinates(restaurant string) *LatLng {
	if restaurant == "" {
		return nil
	}
	if c, ok := restaurantCoords[restaurant]; ok {
		return &c
	}
	c := DefaultLocation
	return &c
}

// HaversineMiles is the great-circle distance between a and b.
func HaversineMiles(a, b LatLng) float64 {
	toRad := func(x float64) float64 { return x * math.Pi / 180 }

	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)
	lat1 := toRad(a.Lat)
	lat2 := toRad(b.Lat)

	sinDLat := math.Sin(dLat / 2)
	sinDLng := math.Sin(dLng / 2)
	h := sinDLat*sinDLat + math.Cos(lat1)*math.Cos(lat2)*sinDLng*sinDLng

	return earthRadiusMiles * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
