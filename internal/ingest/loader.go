package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/jengzang/bikeshare-analysis-go/internal/config"
	"github.com/jengzang/bikeshare-analysis-go/internal/models"
)

// Column names in the raw trip export
const (
	colStartTime         = "STARTTIME"
	colEndTime           = "ENDTIME"
	colStartLat          = "STARTLAT"
	colStartLon          = "STARTLON"
	colEndLat            = "ENDLAT"
	colEndLon            = "ENDLON"
	colRentalIsStation   = "RENTAL_IS_STATION"
	colRentalStationName = "RENTAL_STATION_NAME"
	colReturnIsStation   = "RETURN_IS_STATION"
	colReturnStationName = "RETURN_STATION_NAME"
)

var requiredColumns = []string{
	colStartTime, colEndTime,
	colStartLat, colStartLon, colEndLat, colEndLon,
}

// LoadRides reads the semicolon-delimited trip file and returns one Ride per
// parseable row. Rows with unparseable timestamps are dropped and counted;
// malformed coordinates become NaN and stay in the result for the pipeline
// filters to remove.
func LoadRides(path string, cfg config.Input) ([]models.Ride, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trip file: %w", err)
	}
	defer f.Close()

	rides, err := ReadRides(f, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return rides, nil
}

// ReadRides parses trip rows from r. The first row must be a header containing
// at least the timestamp and coordinate columns.
func ReadRides(r io.Reader, cfg config.Input) ([]models.Ride, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	if cfg.Delimiter != "" {
		cr.Comma = rune(cfg.Delimiter[0])
	}
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToUpper(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}

	field := func(record []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var rides []models.Ride
	var droppedTime int

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		start, errS := time.Parse(cfg.TimeLayout, strings.TrimSpace(field(record, colStartTime)))
		end, errE := time.Parse(cfg.TimeLayout, strings.TrimSpace(field(record, colEndTime)))
		if errS != nil || errE != nil {
			droppedTime++
			continue
		}

		ride := models.Ride{
			StartTime:         start,
			EndTime:           end,
			StartLat:          ParseCoordinate(field(record, colStartLat)),
			StartLon:          ParseCoordinate(field(record, colStartLon)),
			EndLat:            ParseCoordinate(field(record, colEndLat)),
			EndLon:            ParseCoordinate(field(record, colEndLon)),
			RentalIsStation:   parseFlag(field(record, colRentalIsStation)),
			RentalStationName: strings.TrimSpace(field(record, colRentalStationName)),
			ReturnIsStation:   parseFlag(field(record, colReturnIsStation)),
			ReturnStationName: strings.TrimSpace(field(record, colReturnStationName)),
		}
		ride.DurationMin = ride.ComputeDuration()
		ride.Weekday = start.Weekday()
		ride.Month = start.Month()

		rides = append(rides, ride)
	}

	if droppedTime > 0 {
		log.Printf("[Loader] Dropped %d rows with unparseable timestamps", droppedTime)
	}
	log.Printf("[Loader] Loaded %d rides", len(rides))

	return rides, nil
}
