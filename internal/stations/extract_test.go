package stations

import (
	"math"
	"reflect"
	"testing"

	"github.com/jengzang/bikeshare-analysis-go/internal/models"
)

func testRides() []models.Ride {
	return []models.Ride{
		{
			RentalStationName: "Marienplatz", StartLat: 48.13743, StartLon: 11.57549,
			ReturnStationName: "Olympiapark", EndLat: 48.17500, EndLon: 11.55180,
		},
		{
			// Same rental station again; must not duplicate
			RentalStationName: "Marienplatz", StartLat: 48.13743, StartLon: 11.57549,
			ReturnStationName: "Ostbahnhof", EndLat: 48.12750, EndLon: 11.60470,
		},
		{
			// Free-floating ride; contributes no stations
			StartLat: 48.14, StartLon: 11.56, EndLat: 48.15, EndLon: 11.57,
		},
		{
			// Olympiapark also appears as a rental; the start point wins
			RentalStationName: "Olympiapark", StartLat: 48.17501, StartLon: 11.55181,
			EndLat: 48.14, EndLon: 11.56,
		},
	}
}

func TestExtract(t *testing.T) {
	sts := Extract(testRides())

	if len(sts) != 3 {
		t.Fatalf("expected 3 stations, got %d: %v", len(sts), sts)
	}

	// Sorted by name
	names := []string{sts[0].Name, sts[1].Name, sts[2].Name}
	want := []string{"Marienplatz", "Olympiapark", "Ostbahnhof"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("station names = %v, want %v", names, want)
	}

	// Rental (start) points take precedence over return points by name
	for _, s := range sts {
		if s.Name == "Olympiapark" && s.Lat != 48.17501 {
			t.Errorf("Olympiapark should use the rental coordinates, got lat %v", s.Lat)
		}
	}
}

func TestExtractIdempotent(t *testing.T) {
	rides := testRides()

	first := Extract(rides)
	second := Extract(rides)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("Extract is not idempotent over the same ride set")
	}
}

func TestExtractSkipsNaNCoordinates(t *testing.T) {
	rides := []models.Ride{
		{RentalStationName: "Broken", StartLat: math.NaN(), StartLon: 11.5},
	}

	if sts := Extract(rides); len(sts) != 0 {
		t.Fatalf("station with NaN coordinates must be excluded, got %v", sts)
	}
}

func TestPoints(t *testing.T) {
	sts := []models.Station{{Name: "A", Lat: 1, Lon: 2}, {Name: "B", Lat: 3, Lon: 4}}
	points := Points(sts)
	if len(points) != 2 || points[1].Lat != 3 || points[1].Lon != 4 {
		t.Fatalf("unexpected points: %v", points)
	}
}
