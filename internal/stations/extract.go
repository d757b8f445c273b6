package stations

import (
	"log"
	"sort"

	"github.com/jengzang/bikeshare-analysis-go/internal/models"
	"github.com/jengzang/bikeshare-analysis-go/internal/spatial"
)

// Extract derives the distinct set of stations from ride endpoints.
//
// Rental (start) points are taken first; return (end) points are unioned in
// only when their name is not already present. Rows without a station name are
// excluded, as are rows with non-finite coordinates. Deduplication is by name,
// so running Extract twice over the same rides yields the same station set.
// The result is sorted by name for reproducible output.
func Extract(rides []models.Ride) []models.Station {
	byName := make(map[string]models.Station)

	for _, r := range rides {
		if r.RentalStationName == "" {
			continue
		}
		if !spatial.IsFinitePoint(r.StartLat, r.StartLon) {
			continue
		}
		if _, ok := byName[r.RentalStationName]; !ok {
			byName[r.RentalStationName] = models.Station{
				Name: r.RentalStationName,
				Lat:  r.StartLat,
				Lon:  r.StartLon,
			}
		}
	}

	for _, r := range rides {
		if r.ReturnStationName == "" {
			continue
		}
		if !spatial.IsFinitePoint(r.EndLat, r.EndLon) {
			continue
		}
		if _, ok := byName[r.ReturnStationName]; !ok {
			byName[r.ReturnStationName] = models.Station{
				Name: r.ReturnStationName,
				Lat:  r.EndLat,
				Lon:  r.EndLon,
			}
		}
	}

	result := make([]models.Station, 0, len(byName))
	for _, s := range byName {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })

	log.Printf("[Stations] Extracted %d distinct stations", len(result))
	return result
}

// Points returns the station coordinates as spatial points, in station order
func Points(stations []models.Station) []spatial.Point {
	points := make([]spatial.Point, len(stations))
	for i, s := range stations {
		points[i] = spatial.Point{Lat: s.Lat, Lon: s.Lon}
	}
	return points
}
