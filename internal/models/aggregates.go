package models

// WeekdayStats is the per-weekday aggregate view over cleaned rides.
type WeekdayStats struct {
	Weekday     string  `dataframe:"weekday"`
	RideCount   int     `dataframe:"ride_count"`
	MeanMinutes float64 `dataframe:"mean_minutes"`
}

// MonthStats is the per-month aggregate view over cleaned rides.
type MonthStats struct {
	Month       string  `dataframe:"month"`
	Season      string  `dataframe:"season"`
	RideCount   int     `dataframe:"ride_count"`
	MeanMinutes float64 `dataframe:"mean_minutes"`
}

// ClusterStats summarizes one spatial cluster of ride start points: its size,
// the duration profile of its rides, its center, and its spatial extent.
// MeanRadiusM is the mean great-circle distance from the member start points
// to the cluster centroid, a compactness measure in meters.
type ClusterStats struct {
	Cluster       int     `dataframe:"cluster"`
	RideCount     int     `dataframe:"ride_count"`
	TotalMinutes  float64 `dataframe:"total_minutes"`
	MeanMinutes   float64 `dataframe:"mean_minutes"`
	MedianMinutes float64 `dataframe:"median_minutes"`
	MinMinutes    float64 `dataframe:"min_minutes"`
	MaxMinutes    float64 `dataframe:"max_minutes"`
	P90Minutes    float64 `dataframe:"p90_minutes"`
	CenterLat     float64 `dataframe:"center_lat"`
	CenterLon     float64 `dataframe:"center_lon"`
	MeanRadiusM   float64 `dataframe:"mean_radius_m"`
	HullVertices  int     `dataframe:"hull_vertices"`
}
