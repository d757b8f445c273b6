package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Padding holds asymmetric bounding-box padding as fractions of the box span per
// axis. Longitude padding is much larger than latitude padding because the city
// extends further east-west than north-south.
type Padding struct {
	Lat float64 `yaml:"lat" validate:"gte=0"`
	Lon float64 `yaml:"lon" validate:"gte=0"`
}

// Filters is the admissibility policy applied to rides after loading.
// These are named values rather than inline literals so the policy is auditable
// and testable on its own.
type Filters struct {
	MinDurationMin float64 `yaml:"minDurationMin" validate:"gte=0"`
	MaxDurationMin float64 `yaml:"maxDurationMin" validate:"gtfield=MinDurationMin"`

	// A ride either stays at distance zero (round trip) or must cover at least
	// MinDistanceKm between its endpoints
	MinDistanceKm float64 `yaml:"minDistanceKm" validate:"gte=0"`

	// Round trips shorter than this many minutes are treated as aborted rentals
	ZeroDistanceMinMin float64 `yaml:"zeroDistanceMinMin" validate:"gte=0"`

	// Padding for the geo filter box. Distinct from Map.Padding on purpose: the
	// filter box and the rendering box use different fractions.
	BoxPadding Padding `yaml:"boxPadding"`
}

// Clustering configures the spatial k-means pass over ride start points.
type Clustering struct {
	K             int   `yaml:"k" validate:"gt=0"`
	Seed          int64 `yaml:"seed"`
	MaxIterations int   `yaml:"maxIterations" validate:"gt=0"`
}

// Input describes the raw trip file.
type Input struct {
	Path       string `yaml:"path"`
	Delimiter  string `yaml:"delimiter" validate:"len=1"`
	TimeLayout string `yaml:"timeLayout" validate:"required"`
}

// Map configures basemap rendering and the external tile service.
type Map struct {
	// XYZ template with {z}/{x}/{y} placeholders. Empty disables the basemap;
	// plots are still rendered on a plain background.
	TileURL string `yaml:"tileURL"`

	Zoom    int     `yaml:"zoom" validate:"gte=1,lte=19"`
	Width   int     `yaml:"width" validate:"gte=256"`
	Height  int     `yaml:"height" validate:"gte=256"`
	Padding Padding `yaml:"padding"`

	TileCacheSize   int `yaml:"tileCacheSize" validate:"gt=0"`
	TileCacheTTLMin int `yaml:"tileCacheTTLMin" validate:"gt=0"`
}

// Config is the full application configuration.
type Config struct {
	Input      Input      `yaml:"input"`
	OutputDir  string     `yaml:"outputDir" validate:"required"`
	Filters    Filters    `yaml:"filters"`
	Clustering Clustering `yaml:"clustering"`
	Map        Map        `yaml:"map"`
}

// Default returns the reference policy used when no config file is given.
func Default() *Config {
	return &Config{
		Input: Input{
			Path:       "./data/rides.csv",
			Delimiter:  ";",
			TimeLayout: "2006-01-02 15:04:05",
		},
		OutputDir: "./output",
		Filters: Filters{
			MinDurationMin:     3,
			MaxDurationMin:     300,
			MinDistanceKm:      0.3,
			ZeroDistanceMinMin: 30,
			BoxPadding:         Padding{Lat: 0.02, Lon: 0.12},
		},
		Clustering: Clustering{
			K:             15,
			Seed:          42,
			MaxIterations: 100,
		},
		Map: Map{
			TileURL:         "https://tile.openstreetmap.org/{z}/{x}/{y}.png",
			Zoom:            12,
			Width:           1280,
			Height:          960,
			Padding:         Padding{Lat: 0.05, Lon: 0.30},
			TileCacheSize:   256,
			TileCacheTTLMin: 60,
		},
	}
}

// Load reads the YAML file at path over the defaults and validates the result.
// An empty path returns the validated defaults. Environment variables
// BIKESHARE_INPUT and BIKESHARE_OUTPUT override the file locations last.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if v := os.Getenv("BIKESHARE_INPUT"); v != "" {
		cfg.Input.Path = v
	}
	if v := os.Getenv("BIKESHARE_OUTPUT"); v != "" {
		cfg.OutputDir = v
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
