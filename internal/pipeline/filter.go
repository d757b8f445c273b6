package pipeline

import (
	"log"

	"github.com/jengzang/bikeshare-analysis-go/internal/config"
	"github.com/jengzang/bikeshare-analysis-go/internal/models"
	"github.com/jengzang/bikeshare-analysis-go/internal/spatial"
	"github.com/jengzang/bikeshare-analysis-go/internal/stations"
)

// FilterBox computes the geo-filter bounding box from the station coordinates,
// expanded by the configured asymmetric padding. The box must be computed from
// the full station set before any duration or distance filtering happens.
func FilterBox(sts []models.Station, pad config.Padding) spatial.Box {
	box := spatial.BoundingBox(stations.Points(sts))
	return box.ExpandAsymmetric(pad.Lat, pad.Lon)
}

// durationAdmissible checks 3 < duration < 300 under the configured bounds.
// NaN durations fail both comparisons.
func durationAdmissible(r models.Ride, f config.Filters) bool {
	return r.DurationMin > f.MinDurationMin && r.DurationMin < f.MaxDurationMin
}

// withinBox requires both ride endpoints strictly inside the filter box.
// NaN coordinates from malformed input fail here; this filter doubles as the
// data-quality gate for unparseable coordinates.
func withinBox(r models.Ride, box spatial.Box) bool {
	return box.ContainsStrict(r.StartLat, r.StartLon) &&
		box.ContainsStrict(r.EndLat, r.EndLon)
}

// distanceAdmissible accepts exact round trips (distance zero) and rides that
// cover more than the minimum point-to-point distance. NaN fails both arms.
func distanceAdmissible(r models.Ride, f config.Filters) bool {
	return r.DistanceKm == 0 || r.DistanceKm > f.MinDistanceKm
}

// notAbortedRoundTrip rejects zero-distance rides shorter than the configured
// minimum; those are aborted rentals, not round trips
func notAbortedRoundTrip(r models.Ride, f config.Filters) bool {
	return !(r.DistanceKm == 0 && r.DurationMin < f.ZeroDistanceMinMin)
}

// filterRides returns a new slice with the rides that pass pred. The input is
// never mutated; every stage of the pipeline is a fresh collection.
func filterRides(rides []models.Ride, pred func(models.Ride) bool) []models.Ride {
	out := make([]models.Ride, 0, len(rides))
	for _, r := range rides {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// Clean applies the admissibility filters in order: duration range, bounding
// box, distance range, zero-distance/short-duration compound. The filters are
// independent predicates conjoined by AND, so the result does not depend on
// the order; cheaper checks simply run first. Distances are attached right
// before the distance filters need them.
func Clean(rides []models.Ride, sts []models.Station, f config.Filters) []models.Ride {
	box := FilterBox(sts, f.BoxPadding)
	log.Printf("[Pipeline] Filter box lat [%.5f, %.5f] lon [%.5f, %.5f]",
		box.MinLat, box.MaxLat, box.MinLon, box.MaxLon)

	out := filterRides(rides, func(r models.Ride) bool { return durationAdmissible(r, f) })
	log.Printf("[Pipeline] %d/%d rides after duration filter", len(out), len(rides))

	inBox := filterRides(out, func(r models.Ride) bool { return withinBox(r, box) })
	log.Printf("[Pipeline] %d/%d rides after bounding-box filter", len(inBox), len(out))

	withDist := AttachDistances(inBox)

	final := filterRides(withDist, func(r models.Ride) bool {
		return distanceAdmissible(r, f) && notAbortedRoundTrip(r, f)
	})
	log.Printf("[Pipeline] %d/%d rides after distance filters", len(final), len(withDist))

	return final
}
