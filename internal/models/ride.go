package models

import "time"

// Ride represents one bike rental-to-return event with spatial and temporal endpoints.
//
// Coordinate fields may hold NaN when the raw digit-string encoding was malformed.
// NaN rows are not reported as errors; they fail the numeric range filters in the
// pipeline, which double as the data-quality gate.
type Ride struct {
	StartTime time.Time
	EndTime   time.Time
	StartLat  float64
	StartLon  float64
	EndLat    float64
	EndLon    float64

	// Station metadata; names are empty for free-floating rentals/returns
	RentalIsStation   bool
	RentalStationName string
	ReturnIsStation   bool
	ReturnStationName string

	// Derived fields attached during the pipeline
	DurationMin float64
	DistanceKm  float64
	Weekday     time.Weekday
	Month       time.Month
	Cluster     int
}

// ComputeDuration returns the ride duration in minutes.
func (r Ride) ComputeDuration() float64 {
	return r.EndTime.Sub(r.StartTime).Minutes()
}

// Station represents a named physical location where rides may start or end.
// A station has no identity beyond its name and coordinate pair.
type Station struct {
	Name string
	Lat  float64
	Lon  float64
}
