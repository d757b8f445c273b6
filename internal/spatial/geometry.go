package spatial

import (
	"math"
	"sort"
)

// Point represents a 2D point with latitude and longitude
type Point struct {
	Lat float64
	Lon float64
}

// Centroid calculates the geographic centroid of a set of points
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}

	var sumLat, sumLon float64
	for _, p := range points {
		sumLat += p.Lat
		sumLon += p.Lon
	}

	return Point{
		Lat: sumLat / float64(len(points)),
		Lon: sumLon / float64(len(points)),
	}
}

// Box is a rectangular lat/lon region
type Box struct {
	MinLat float64
	MinLon float64
	MaxLat float64
	MaxLon float64
}

// BoundingBox calculates the bounding box of a set of points
func BoundingBox(points []Point) Box {
	if len(points) == 0 {
		return Box{}
	}

	box := Box{
		MinLat: points[0].Lat, MaxLat: points[0].Lat,
		MinLon: points[0].Lon, MaxLon: points[0].Lon,
	}

	for _, p := range points[1:] {
		if p.Lat < box.MinLat {
			box.MinLat = p.Lat
		}
		if p.Lat > box.MaxLat {
			box.MaxLat = p.Lat
		}
		if p.Lon < box.MinLon {
			box.MinLon = p.Lon
		}
		if p.Lon > box.MaxLon {
			box.MaxLon = p.Lon
		}
	}

	return box
}

// ExpandAsymmetric returns a copy of the box grown by latPad and lonPad, each a
// fraction of the box span on its axis. Latitude and longitude padding differ
// because a city footprint is rarely square.
func (b Box) ExpandAsymmetric(latPad, lonPad float64) Box {
	latSpan := b.MaxLat - b.MinLat
	lonSpan := b.MaxLon - b.MinLon
	return Box{
		MinLat: b.MinLat - latSpan*latPad,
		MaxLat: b.MaxLat + latSpan*latPad,
		MinLon: b.MinLon - lonSpan*lonPad,
		MaxLon: b.MaxLon + lonSpan*lonPad,
	}
}

// ContainsStrict reports whether the point lies strictly inside the box on both
// axes. Points on the boundary do not count, and NaN coordinates always fail.
func (b Box) ContainsStrict(lat, lon float64) bool {
	return lat > b.MinLat && lat < b.MaxLat && lon > b.MinLon && lon < b.MaxLon
}

// ConvexHull computes the convex hull of a set of points using Andrew's monotone
// chain algorithm. The hull is returned in counter-clockwise order without the
// closing point repeated. Fewer than three distinct points yield the input
// (deduplicated and sorted).
func ConvexHull(points []Point) []Point {
	if len(points) < 3 {
		out := make([]Point, len(points))
		copy(out, points)
		sortPoints(out)
		return dedupePoints(out)
	}

	sorted := make([]Point, len(points))
	copy(sorted, points)
	sortPoints(sorted)
	sorted = dedupePoints(sorted)

	if len(sorted) < 3 {
		return sorted
	}

	// Lower hull
	var lower []Point
	for _, p := range sorted {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	// Upper hull
	var upper []Point
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// Concatenate, dropping the duplicated endpoints
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

// cross returns the z-component of (b-a) x (c-a); positive for a left turn
func cross(a, b, c Point) float64 {
	return (b.Lon-a.Lon)*(c.Lat-a.Lat) - (b.Lat-a.Lat)*(c.Lon-a.Lon)
}

func sortPoints(points []Point) {
	sort.Slice(points, func(i, j int) bool {
		if points[i].Lon != points[j].Lon {
			return points[i].Lon < points[j].Lon
		}
		return points[i].Lat < points[j].Lat
	})
}

func dedupePoints(sorted []Point) []Point {
	out := sorted[:0]
	for i, p := range sorted {
		if i == 0 || p != sorted[i-1] {
			out = append(out, p)
		}
	}
	return out
}

// PointInPolygon checks if a point is inside a polygon using ray casting
func PointInPolygon(point Point, polygon []Point) bool {
	if len(polygon) < 3 {
		return false
	}

	inside := false
	j := len(polygon) - 1

	for i := 0; i < len(polygon); i++ {
		if ((polygon[i].Lat > point.Lat) != (polygon[j].Lat > point.Lat)) &&
			(point.Lon < (polygon[j].Lon-polygon[i].Lon)*(point.Lat-polygon[i].Lat)/(polygon[j].Lat-polygon[i].Lat)+polygon[i].Lon) {
			inside = !inside
		}
		j = i
	}

	return inside
}

// IsFinitePoint reports whether both coordinates are finite numbers
func IsFinitePoint(lat, lon float64) bool {
	return !math.IsNaN(lat) && !math.IsInf(lat, 0) && !math.IsNaN(lon) && !math.IsInf(lon, 0)
}
