package ingest

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/jengzang/bikeshare-analysis-go/internal/config"
)

func testInputConfig() config.Input {
	return config.Input{
		Delimiter:  ";",
		TimeLayout: "2006-01-02 15:04:05",
	}
}

const testHeader = "STARTTIME;ENDTIME;STARTLAT;STARTLON;ENDLAT;ENDLON;" +
	"RENTAL_IS_STATION;RENTAL_STATION_NAME;RETURN_IS_STATION;RETURN_STATION_NAME"

func TestReadRides(t *testing.T) {
	data := testHeader + "\n" +
		"2019-07-01 08:15:00;2019-07-01 08:32:00;4813521;1157549;4815577;1153408;1;Marienplatz;1;Olympiapark\n" +
		"2019-01-05 14:00:00;2019-01-05 14:10:00;4814000;1156000;4814100;1156100;0;;0;\n"

	rides, err := ReadRides(strings.NewReader(data), testInputConfig())
	if err != nil {
		t.Fatalf("ReadRides failed: %v", err)
	}
	if len(rides) != 2 {
		t.Fatalf("expected 2 rides, got %d", len(rides))
	}

	r := rides[0]
	if r.StartLat != 48.13521 || r.StartLon != 11.57549 {
		t.Errorf("start coords = (%v, %v), want (48.13521, 11.57549)", r.StartLat, r.StartLon)
	}
	if r.EndLat != 48.15577 || r.EndLon != 11.53408 {
		t.Errorf("end coords = (%v, %v), want (48.15577, 11.53408)", r.EndLat, r.EndLon)
	}
	if !r.RentalIsStation || r.RentalStationName != "Marienplatz" {
		t.Errorf("rental station = (%v, %q), want (true, Marienplatz)", r.RentalIsStation, r.RentalStationName)
	}
	if r.ReturnStationName != "Olympiapark" {
		t.Errorf("return station = %q, want Olympiapark", r.ReturnStationName)
	}
	if math.Abs(r.DurationMin-17) > 1e-9 {
		t.Errorf("duration = %v min, want 17", r.DurationMin)
	}
	if r.Weekday != time.Monday {
		t.Errorf("weekday = %v, want Monday", r.Weekday)
	}
	if r.Month != time.July {
		t.Errorf("month = %v, want July", r.Month)
	}

	if rides[1].RentalIsStation || rides[1].RentalStationName != "" {
		t.Errorf("free-floating ride should have no rental station")
	}
}

func TestReadRidesMalformedCoordinate(t *testing.T) {
	data := testHeader + "\n" +
		"2019-07-01 08:15:00;2019-07-01 08:32:00;48xx521;1157549;4815577;1153408;0;;0;\n"

	rides, err := ReadRides(strings.NewReader(data), testInputConfig())
	if err != nil {
		t.Fatalf("ReadRides failed: %v", err)
	}
	if len(rides) != 1 {
		t.Fatalf("expected 1 ride, got %d", len(rides))
	}

	// Malformed coordinates stay in the row as NaN for the filters to remove
	if !math.IsNaN(rides[0].StartLat) {
		t.Errorf("StartLat = %v, want NaN", rides[0].StartLat)
	}
	if rides[0].EndLat != 48.15577 {
		t.Errorf("EndLat = %v, want 48.15577", rides[0].EndLat)
	}
}

func TestReadRidesBadTimestampDropped(t *testing.T) {
	data := testHeader + "\n" +
		"not-a-time;2019-07-01 08:32:00;4813521;1157549;4815577;1153408;0;;0;\n" +
		"2019-07-01 08:15:00;2019-07-01 08:32:00;4813521;1157549;4815577;1153408;0;;0;\n"

	rides, err := ReadRides(strings.NewReader(data), testInputConfig())
	if err != nil {
		t.Fatalf("ReadRides failed: %v", err)
	}
	if len(rides) != 1 {
		t.Fatalf("expected bad-timestamp row to be dropped, got %d rides", len(rides))
	}
}

func TestReadRidesMissingColumn(t *testing.T) {
	data := "STARTTIME;ENDTIME;STARTLAT\n2019-07-01 08:15:00;2019-07-01 08:32:00;4813521\n"

	if _, err := ReadRides(strings.NewReader(data), testInputConfig()); err == nil {
		t.Fatal("expected error for missing required column")
	}
}
