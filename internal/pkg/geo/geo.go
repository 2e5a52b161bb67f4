package geo

import "math"

// Point represents a geographical point with latitude and longitude
type Point struct {
	Latitude  float64
	Longitude float64
}

// earthRadiusMeters is the mean earth radius used by the haversine formula
const earthRadiusMeters = 6371000.0

// metersPerDegreeLat is the approximate length of one degree of latitude
const metersPerDegreeLat = 111320.0

// Distance calculates the great-circle distance between two points in
// meters using the Haversine formula
func Distance(a, b Point) float64 {
	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}
