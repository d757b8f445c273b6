package spatial

import (
	"math"
	"testing"
)

func TestBoundingBox(t *testing.T) {
	points := []Point{
		{Lat: 48.15, Lon: 11.60},
		{Lat: 48.10, Lon: 11.50},
		{Lat: 48.20, Lon: 11.55},
	}

	box := BoundingBox(points)
	if box.MinLat != 48.10 || box.MaxLat != 48.20 {
		t.Errorf("lat bounds = [%v, %v], want [48.10, 48.20]", box.MinLat, box.MaxLat)
	}
	if box.MinLon != 11.50 || box.MaxLon != 11.60 {
		t.Errorf("lon bounds = [%v, %v], want [11.50, 11.60]", box.MinLon, box.MaxLon)
	}
}

func TestExpandAsymmetric(t *testing.T) {
	box := Box{MinLat: 48.10, MaxLat: 48.20, MinLon: 11.50, MaxLon: 11.60}
	expanded := box.ExpandAsymmetric(0.1, 0.5)

	// lat span 0.1 padded by 10%, lon span 0.1 padded by 50%
	if math.Abs(expanded.MinLat-48.09) > 1e-9 || math.Abs(expanded.MaxLat-48.21) > 1e-9 {
		t.Errorf("lat bounds = [%v, %v], want [48.09, 48.21]", expanded.MinLat, expanded.MaxLat)
	}
	if math.Abs(expanded.MinLon-11.45) > 1e-9 || math.Abs(expanded.MaxLon-11.65) > 1e-9 {
		t.Errorf("lon bounds = [%v, %v], want [11.45, 11.65]", expanded.MinLon, expanded.MaxLon)
	}
}

func TestContainsStrict(t *testing.T) {
	box := Box{MinLat: 48.10, MaxLat: 48.20, MinLon: 11.50, MaxLon: 11.60}

	tests := []struct {
		name     string
		lat, lon float64
		expected bool
	}{
		{"inside", 48.15, 11.55, true},
		{"on lat boundary", 48.10, 11.55, false},
		{"on lon boundary", 48.15, 11.60, false},
		{"outside lat", 48.25, 11.55, false},
		{"outside lon", 48.15, 11.70, false},
		{"NaN lat", math.NaN(), 11.55, false},
		{"NaN lon", 48.15, math.NaN(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.ContainsStrict(tt.lat, tt.lon); got != tt.expected {
				t.Errorf("ContainsStrict(%v, %v) = %v, want %v", tt.lat, tt.lon, got, tt.expected)
			}
		})
	}
}

func TestConvexHull(t *testing.T) {
	// Square with an interior point; the hull must be the four corners
	points := []Point{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 1},
		{Lat: 1, Lon: 0},
		{Lat: 1, Lon: 1},
		{Lat: 0.5, Lon: 0.5},
	}

	hull := ConvexHull(points)
	if len(hull) != 4 {
		t.Fatalf("hull has %d vertices, want 4: %v", len(hull), hull)
	}

	for _, p := range hull {
		if p == (Point{Lat: 0.5, Lon: 0.5}) {
			t.Fatal("interior point must not be on the hull")
		}
	}

	if !PointInPolygon(Point{Lat: 0.5, Lon: 0.5}, hull) {
		t.Fatal("interior point should be inside the hull polygon")
	}
	if PointInPolygon(Point{Lat: 2, Lon: 2}, hull) {
		t.Fatal("outside point should not be inside the hull polygon")
	}
}

func TestConvexHullCollinear(t *testing.T) {
	points := []Point{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 1},
		{Lat: 0, Lon: 2},
	}

	hull := ConvexHull(points)
	if len(hull) > 2 {
		t.Fatalf("collinear points should reduce to endpoints, got %d vertices", len(hull))
	}
}

func TestConvexHullSmallInputs(t *testing.T) {
	if hull := ConvexHull(nil); len(hull) != 0 {
		t.Errorf("empty input should yield empty hull")
	}

	two := []Point{{Lat: 1, Lon: 1}, {Lat: 2, Lon: 2}}
	if hull := ConvexHull(two); len(hull) != 2 {
		t.Errorf("two points should yield both, got %d", len(hull))
	}

	dup := []Point{{Lat: 1, Lon: 1}, {Lat: 1, Lon: 1}}
	if hull := ConvexHull(dup); len(hull) != 1 {
		t.Errorf("duplicate points should dedupe, got %d", len(hull))
	}
}

func TestCentroid(t *testing.T) {
	points := []Point{{Lat: 0, Lon: 0}, {Lat: 2, Lon: 4}}
	c := Centroid(points)
	if c.Lat != 1 || c.Lon != 2 {
		t.Fatalf("centroid = %v, want (1, 2)", c)
	}
}

func TestIsFinitePoint(t *testing.T) {
	if !IsFinitePoint(48.1, 11.5) {
		t.Error("finite coordinates reported as non-finite")
	}
	if IsFinitePoint(math.NaN(), 11.5) || IsFinitePoint(48.1, math.Inf(1)) {
		t.Error("non-finite coordinates reported as finite")
	}
}
