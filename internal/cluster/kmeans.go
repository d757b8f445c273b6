package cluster

import (
	"log"
	"math"
	"math/rand"

	"github.com/jengzang/bikeshare-analysis-go/internal/config"
	"github.com/jengzang/bikeshare-analysis-go/internal/models"
	"github.com/jengzang/bikeshare-analysis-go/internal/spatial"
	"github.com/jengzang/bikeshare-analysis-go/internal/stats"
)

// Result holds a k-means partition of a point set.
type Result struct {
	K           int
	Assignments []int           // cluster label per input point, in input order
	Centroids   []spatial.Point // final cluster centers
}

// KMeans partitions points into k planar lat/lon clusters.
//
// The random source is seeded explicitly, so a fixed seed, fixed k and fixed
// input always produce the identical assignment. The first centroid is a
// seeded random pick; the remaining ones use farthest-point initialization,
// which keeps initial centroids spread out and is deterministic given the
// first pick. Iteration stops when no assignment changes or after maxIter
// rounds. A cluster that loses all its members keeps its previous centroid.
// There is no cluster-count selection here: k is configuration.
func KMeans(points []spatial.Point, k int, seed int64, maxIter int) Result {
	if len(points) == 0 || k <= 0 {
		return Result{K: 0}
	}
	if k > len(points) {
		k = len(points)
	}

	rng := rand.New(rand.NewSource(seed))
	centroids := initialCentroids(points, k, rng)

	assignments := make([]int, len(points))
	for i := range assignments {
		assignments[i] = -1
	}

	for iter := 0; iter < maxIter; iter++ {
		changed := false

		for i, p := range points {
			best := 0
			bestDist := math.MaxFloat64
			for c, centroid := range centroids {
				d := sqDist(p, centroid)
				if d < bestDist {
					bestDist = d
					best = c
				}
			}
			if assignments[i] != best {
				assignments[i] = best
				changed = true
			}
		}

		if !changed {
			break
		}

		sumLat := make([]float64, k)
		sumLon := make([]float64, k)
		counts := make([]int, k)
		for i, p := range points {
			c := assignments[i]
			sumLat[c] += p.Lat
			sumLon[c] += p.Lon
			counts[c]++
		}
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				continue
			}
			centroids[c] = spatial.Point{
				Lat: sumLat[c] / float64(counts[c]),
				Lon: sumLon[c] / float64(counts[c]),
			}
		}
	}

	return Result{K: k, Assignments: assignments, Centroids: centroids}
}

// initialCentroids picks the first centroid at random and every further one
// as the point farthest from all centroids chosen so far, ties broken by the
// lowest index.
func initialCentroids(points []spatial.Point, k int, rng *rand.Rand) []spatial.Point {
	centroids := make([]spatial.Point, 0, k)
	centroids = append(centroids, points[rng.Intn(len(points))])

	minDist := make([]float64, len(points))
	for i, p := range points {
		minDist[i] = sqDist(p, centroids[0])
	}

	for len(centroids) < k {
		farthest := 0
		for i := 1; i < len(points); i++ {
			if minDist[i] > minDist[farthest] {
				farthest = i
			}
		}
		next := points[farthest]
		centroids = append(centroids, next)
		for i, p := range points {
			if d := sqDist(p, next); d < minDist[i] {
				minDist[i] = d
			}
		}
	}
	return centroids
}

// sqDist is the squared planar distance in degree space. The clustering runs
// on raw coordinates inside one city, where the planar approximation holds.
func sqDist(a, b spatial.Point) float64 {
	dLat := a.Lat - b.Lat
	dLon := a.Lon - b.Lon
	return dLat*dLat + dLon*dLon
}

// AssignRides clusters the ride start coordinates and returns a new ride slice
// with cluster labels attached, together with the partition.
func AssignRides(rides []models.Ride, cfg config.Clustering) ([]models.Ride, Result) {
	points := make([]spatial.Point, len(rides))
	for i, r := range rides {
		points[i] = spatial.Point{Lat: r.StartLat, Lon: r.StartLon}
	}

	result := KMeans(points, cfg.K, cfg.Seed, cfg.MaxIterations)

	out := make([]models.Ride, len(rides))
	copy(out, rides)
	for i := range out {
		out[i].Cluster = result.Assignments[i]
	}

	log.Printf("[Cluster] Assigned %d rides to %d clusters (seed=%d)", len(out), result.K, cfg.Seed)
	return out, result
}

// Hulls computes the convex hull of each cluster's member points, indexed by
// cluster label. Clusters with fewer than three distinct points yield their
// points as-is; overlays skip those.
func Hulls(rides []models.Ride, result Result) [][]spatial.Point {
	members := make([][]spatial.Point, result.K)
	for _, r := range rides {
		members[r.Cluster] = append(members[r.Cluster], spatial.Point{Lat: r.StartLat, Lon: r.StartLon})
	}

	hulls := make([][]spatial.Point, result.K)
	for c, pts := range members {
		hulls[c] = spatial.ConvexHull(pts)
	}
	return hulls
}

// Summaries builds the per-cluster aggregate view for reporting: member count,
// the duration profile of the member rides, and a compactness measure (mean
// great-circle distance from the start points to the centroid). Empty clusters
// report zero for every profile value.
func Summaries(rides []models.Ride, result Result, hulls [][]spatial.Point) []models.ClusterStats {
	durations := make([][]float64, result.K)
	radii := make([][]float64, result.K)
	for _, r := range rides {
		c := r.Cluster
		durations[c] = append(durations[c], r.DurationMin)
		radii[c] = append(radii[c], spatial.HaversineMeters(
			r.StartLat, r.StartLon, result.Centroids[c].Lat, result.Centroids[c].Lon))
	}

	out := make([]models.ClusterStats, result.K)
	for c := 0; c < result.K; c++ {
		out[c] = models.ClusterStats{
			Cluster:       c,
			RideCount:     len(durations[c]),
			TotalMinutes:  stats.Sum(durations[c]),
			MeanMinutes:   stats.Mean(durations[c]),
			MedianMinutes: stats.Median(durations[c]),
			MinMinutes:    stats.Min(durations[c]),
			MaxMinutes:    stats.Max(durations[c]),
			P90Minutes:    stats.Quantile(durations[c], 0.9),
			CenterLat:     result.Centroids[c].Lat,
			CenterLon:     result.Centroids[c].Lon,
			MeanRadiusM:   stats.Mean(radii[c]),
			HullVertices:  len(hulls[c]),
		}
	}
	return out
}
