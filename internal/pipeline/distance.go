package pipeline

import (
	"runtime"
	"sync"

	"github.com/jengzang/bikeshare-analysis-go/internal/models"
	"github.com/jengzang/bikeshare-analysis-go/internal/spatial"
)

// AttachDistances computes the haversine distance for every ride and returns a
// new slice with DistanceKm populated.
//
// The per-row computation is independent and pure, so it is dispatched across
// a worker pool sized to available cores minus one. Workers receive row
// indices and write only to their own index in the output slice; original row
// order is preserved by construction and no locking is needed.
func AttachDistances(rides []models.Ride) []models.Ride {
	out := make([]models.Ride, len(rides))
	copy(out, rides)

	workers := runtime.NumCPU() - 1
	if workers < 1 {
		workers = 1
	}
	if workers > len(out) {
		workers = len(out)
	}
	if workers == 0 {
		return out
	}

	jobs := make(chan int, workers)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				r := out[i]
				out[i].DistanceKm = spatial.HaversineKm(r.StartLat, r.StartLon, r.EndLat, r.EndLon)
			}
		}()
	}

	for i := range out {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return out
}
