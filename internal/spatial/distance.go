package spatial

import (
	"github.com/golang/geo/s2"
)

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
	EarthRadiusKm     = 6371.0    // Earth's mean radius in kilometers
)

// HaversineKm calculates the great-circle distance between two points in kilometers
// using the Haversine formula
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// HaversineMeters calculates the great-circle distance between two points in meters
func HaversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	return HaversineKm(lat1, lon1, lat2, lon2) * 1000.0
}

// Midpoint calculates the midpoint between two points
func Midpoint(lat1, lon1, lat2, lon2 float64) (float64, float64) {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)

	// Use S2 interpolation
	mid := s2.Interpolate(0.5, s2.PointFromLatLng(p1), s2.PointFromLatLng(p2))
	midLatLng := s2.LatLngFromPoint(mid)

	return midLatLng.Lat.Degrees(), midLatLng.Lng.Degrees()
}
