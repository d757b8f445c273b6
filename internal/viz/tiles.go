package viz

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bluele/gcache"
)

// tileSize is the edge length of one XYZ basemap tile in pixels
const tileSize = 256

// TileFetcher fetches XYZ basemap tiles from the external tile service and
// keeps them in an LRU cache with expiry, so one plot run never requests the
// same tile twice. The tile service is an opaque collaborator: a fetch failure
// degrades the basemap, never the analysis.
type TileFetcher struct {
	urlTemplate string
	client      *http.Client
	cache       gcache.Cache
}

// NewTileFetcher builds a fetcher for an XYZ URL template with {z}/{x}/{y}
// placeholders.
func NewTileFetcher(urlTemplate string, cacheSize int, ttl time.Duration) *TileFetcher {
	return &TileFetcher{
		urlTemplate: urlTemplate,
		client:      &http.Client{Timeout: 15 * time.Second},
		cache: gcache.New(cacheSize).
			LRU().
			Expiration(ttl).
			Build(),
	}
}

// Fetch returns the tile at z/x/y, from cache when possible.
func (t *TileFetcher) Fetch(z, x, y int) (image.Image, error) {
	key := fmt.Sprintf("%d/%d/%d", z, x, y)
	if v, err := t.cache.Get(key); err == nil {
		return v.(image.Image), nil
	}

	url := strings.NewReplacer(
		"{z}", strconv.Itoa(z),
		"{x}", strconv.Itoa(x),
		"{y}", strconv.Itoa(y),
	).Replace(t.urlTemplate)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build tile request: %w", err)
	}
	req.Header.Set("User-Agent", "bikeshare-analysis-go/1.0")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tile %s: %w", key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tile %s returned status %d", key, resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode tile %s: %w", key, err)
	}

	t.cache.Set(key, img)
	return img, nil
}

// tileCoords projects a lat/lon to fractional XYZ tile coordinates at zoom
// (Web Mercator)
func tileCoords(lat, lon float64, zoom int) (float64, float64) {
	n := math.Exp2(float64(zoom))
	x := (lon + 180.0) / 360.0 * n
	latRad := lat * math.Pi / 180.0
	y := (1.0 - math.Log(math.Tan(latRad)+1.0/math.Cos(latRad))/math.Pi) / 2.0 * n
	return x, y
}
