package viz

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/jengzang/bikeshare-analysis-go/internal/models"
	"github.com/jengzang/bikeshare-analysis-go/internal/temporal"
)

var weekdayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// SeasonTrendCharts renders one weekday ride-count trend chart per season,
// with one line per month of that season.
func SeasonTrendCharts(dir string, rides []models.Ride) error {
	for _, season := range temporal.Seasons() {
		series := temporal.ByWeekdayWithinSeason(rides, season)

		p := plot.New()
		p.Title.Text = fmt.Sprintf("Rides per weekday (%s)", season)
		p.Y.Label.Text = "Rides"
		p.NominalX(weekdayLabels...)

		var args []interface{}
		for _, s := range series {
			xys := make(plotter.XYs, len(temporal.WeekdayOrder))
			for i, wd := range temporal.WeekdayOrder {
				xys[i].X = float64(i)
				xys[i].Y = float64(s.Counts[wd])
			}
			args = append(args, s.Month.String()[:3], xys)
		}

		if err := plotutil.AddLinePoints(p, args...); err != nil {
			return fmt.Errorf("failed to build %s trend chart: %w", season, err)
		}
		p.Legend.Top = true

		path := filepath.Join(dir, fmt.Sprintf("trend_%s.png", strings.ToLower(string(season))))
		if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
			return fmt.Errorf("failed to save %s: %w", path, err)
		}
	}

	log.Printf("[Viz] Season trend charts -> %s", dir)
	return nil
}

// WeekdayCharts renders ride counts and mean durations per weekday.
func WeekdayCharts(dir string, weekdays []models.WeekdayStats) error {
	counts := make(plotter.XYs, len(weekdays))
	durations := make(plotter.XYs, len(weekdays))
	for i, w := range weekdays {
		counts[i] = plotter.XY{X: float64(i), Y: float64(w.RideCount)}
		durations[i] = plotter.XY{X: float64(i), Y: w.MeanMinutes}
	}

	if err := lineChart(filepath.Join(dir, "weekday_counts.png"),
		"Rides per weekday", "Rides", weekdayLabels, counts); err != nil {
		return err
	}
	return lineChart(filepath.Join(dir, "weekday_duration.png"),
		"Mean ride duration per weekday", "Minutes", weekdayLabels, durations)
}

// MonthCharts renders ride counts and mean durations per month.
func MonthCharts(dir string, months []models.MonthStats) error {
	labels := make([]string, len(months))
	counts := make(plotter.XYs, len(months))
	durations := make(plotter.XYs, len(months))
	for i, m := range months {
		labels[i] = m.Month
		counts[i] = plotter.XY{X: float64(i), Y: float64(m.RideCount)}
		durations[i] = plotter.XY{X: float64(i), Y: m.MeanMinutes}
	}

	if err := lineChart(filepath.Join(dir, "month_counts.png"),
		"Rides per month", "Rides", labels, counts); err != nil {
		return err
	}
	return lineChart(filepath.Join(dir, "month_duration.png"),
		"Mean ride duration per month", "Minutes", labels, durations)
}

func lineChart(path, title, yLabel string, labels []string, xys plotter.XYs) error {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel
	p.NominalX(labels...)

	if err := plotutil.AddLinePoints(p, xys); err != nil {
		return fmt.Errorf("failed to build chart %s: %w", path, err)
	}

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
