package viz

import (
	"log"
	"math"
	"time"

	"github.com/fogleman/gg"

	"github.com/jengzang/bikeshare-analysis-go/internal/config"
	"github.com/jengzang/bikeshare-analysis-go/internal/models"
	"github.com/jengzang/bikeshare-analysis-go/internal/spatial"
)

// MapRenderer renders scatter and polygon overlays on top of a basemap raster.
type MapRenderer struct {
	cfg     config.Map
	fetcher *TileFetcher
}

// NewMapRenderer builds a renderer. With an empty tile URL the basemap is
// skipped and overlays are drawn on a plain background.
func NewMapRenderer(cfg config.Map) *MapRenderer {
	m := &MapRenderer{cfg: cfg}
	if cfg.TileURL != "" {
		m.fetcher = NewTileFetcher(cfg.TileURL, cfg.TileCacheSize,
			time.Duration(cfg.TileCacheTTLMin)*time.Minute)
	}
	return m
}

// projector converts lat/lon to pixel coordinates for one rendered map
type projector struct {
	zoom    int
	centerX float64 // fractional tile coords of the map center
	centerY float64
	width   int
	height  int
}

func newProjector(box spatial.Box, zoom, width, height int) projector {
	centerLat, centerLon := spatial.Midpoint(box.MinLat, box.MinLon, box.MaxLat, box.MaxLon)
	cx, cy := tileCoords(centerLat, centerLon, zoom)
	return projector{zoom: zoom, centerX: cx, centerY: cy, width: width, height: height}
}

func (p projector) pixel(lat, lon float64) (float64, float64) {
	x, y := tileCoords(lat, lon, p.zoom)
	return (x-p.centerX)*tileSize + float64(p.width)/2,
		(y-p.centerY)*tileSize + float64(p.height)/2
}

// drawBasemap tiles the viewport with fetched basemap rasters. Missing tiles
// leave the plain background showing.
func (m *MapRenderer) drawBasemap(dc *gg.Context, p projector) {
	if m.fetcher == nil {
		return
	}

	halfW := float64(p.width) / 2 / tileSize
	halfH := float64(p.height) / 2 / tileSize
	maxTile := int(math.Exp2(float64(p.zoom)))

	var failed int
	for tx := int(math.Floor(p.centerX - halfW)); tx <= int(math.Ceil(p.centerX+halfW)); tx++ {
		for ty := int(math.Floor(p.centerY - halfH)); ty <= int(math.Ceil(p.centerY+halfH)); ty++ {
			if tx < 0 || ty < 0 || tx >= maxTile || ty >= maxTile {
				continue
			}
			img, err := m.fetcher.Fetch(p.zoom, tx, ty)
			if err != nil {
				failed++
				continue
			}
			px := (float64(tx)-p.centerX)*tileSize + float64(p.width)/2
			py := (float64(ty)-p.centerY)*tileSize + float64(p.height)/2
			dc.DrawImage(img, int(math.Round(px)), int(math.Round(py)))
		}
	}
	if failed > 0 {
		log.Printf("[Viz] %d basemap tiles unavailable, rendering without them", failed)
	}
}

func (m *MapRenderer) newCanvas(p projector) *gg.Context {
	dc := gg.NewContext(p.width, p.height)
	dc.SetRGB(0.96, 0.96, 0.94)
	dc.Clear()
	m.drawBasemap(dc, p)
	return dc
}

// StationMap renders the station scatter over the basemap and writes a PNG.
// The map bounding box uses the map padding, which is deliberately distinct
// from the filter padding.
func (m *MapRenderer) StationMap(path string, sts []models.Station) error {
	points := make([]spatial.Point, len(sts))
	for i, s := range sts {
		points[i] = spatial.Point{Lat: s.Lat, Lon: s.Lon}
	}
	box := spatial.BoundingBox(points).ExpandAsymmetric(m.cfg.Padding.Lat, m.cfg.Padding.Lon)

	p := newProjector(box, m.cfg.Zoom, m.cfg.Width, m.cfg.Height)
	dc := m.newCanvas(p)

	dc.SetRGBA(0.80, 0.15, 0.10, 0.85)
	for _, s := range sts {
		x, y := p.pixel(s.Lat, s.Lon)
		dc.DrawCircle(x, y, 4)
		dc.Fill()
	}

	log.Printf("[Viz] Station map: %d stations -> %s", len(sts), path)
	return dc.SavePNG(path)
}

// ClusterMap renders the convex hull of each spatial cluster with its centroid
// over the basemap and writes a PNG.
func (m *MapRenderer) ClusterMap(path string, hulls [][]spatial.Point, centroids []spatial.Point) error {
	var all []spatial.Point
	for _, hull := range hulls {
		all = append(all, hull...)
	}
	all = append(all, centroids...)
	box := spatial.BoundingBox(all).ExpandAsymmetric(m.cfg.Padding.Lat, m.cfg.Padding.Lon)

	p := newProjector(box, m.cfg.Zoom, m.cfg.Width, m.cfg.Height)
	dc := m.newCanvas(p)

	for c, hull := range hulls {
		if len(hull) < 3 {
			continue
		}
		r, g, b := clusterColor(c)

		x0, y0 := p.pixel(hull[0].Lat, hull[0].Lon)
		dc.MoveTo(x0, y0)
		for _, pt := range hull[1:] {
			x, y := p.pixel(pt.Lat, pt.Lon)
			dc.LineTo(x, y)
		}
		dc.ClosePath()

		dc.SetRGBA(r, g, b, 0.30)
		dc.FillPreserve()
		dc.SetRGBA(r, g, b, 0.90)
		dc.SetLineWidth(2)
		dc.Stroke()
	}

	for c, centroid := range centroids {
		r, g, b := clusterColor(c)
		x, y := p.pixel(centroid.Lat, centroid.Lon)
		dc.SetRGBA(r, g, b, 1)
		dc.DrawCircle(x, y, 5)
		dc.Fill()
	}

	log.Printf("[Viz] Cluster map: %d clusters -> %s", len(hulls), path)
	return dc.SavePNG(path)
}

// clusterColor spaces cluster hues by the golden angle so neighboring labels
// stay visually distinct
func clusterColor(i int) (float64, float64, float64) {
	hue := math.Mod(float64(i)*137.508, 360)
	return hsvToRGB(hue, 0.75, 0.85)
}

func hsvToRGB(h, s, v float64) (float64, float64, float64) {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}
