package temporal

import (
	"time"

	"github.com/jengzang/bikeshare-analysis-go/internal/models"
	"github.com/jengzang/bikeshare-analysis-go/internal/stats"
)

// WeekdayOrder is the reporting order for weekday aggregates, Monday first.
var WeekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// MonthOrder is the reporting order for month aggregates.
var MonthOrder = []time.Month{
	time.January, time.February, time.March, time.April,
	time.May, time.June, time.July, time.August,
	time.September, time.October, time.November, time.December,
}

// ByWeekday groups cleaned rides by weekday and computes ride count and mean
// duration per group. All seven weekdays appear in the result, Monday first,
// with zero counts for weekdays without rides.
func ByWeekday(rides []models.Ride) []models.WeekdayStats {
	durations := make(map[time.Weekday][]float64)
	for _, r := range rides {
		durations[r.Weekday] = append(durations[r.Weekday], r.DurationMin)
	}

	out := make([]models.WeekdayStats, 0, len(WeekdayOrder))
	for _, wd := range WeekdayOrder {
		out = append(out, models.WeekdayStats{
			Weekday:     wd.String(),
			RideCount:   len(durations[wd]),
			MeanMinutes: stats.Mean(durations[wd]),
		})
	}
	return out
}

// ByMonth groups cleaned rides by month and computes ride count and mean
// duration per group, with the season bucket attached. All twelve months
// appear in the result in calendar order.
func ByMonth(rides []models.Ride) []models.MonthStats {
	durations := make(map[time.Month][]float64)
	for _, r := range rides {
		durations[r.Month] = append(durations[r.Month], r.DurationMin)
	}

	out := make([]models.MonthStats, 0, len(MonthOrder))
	for _, m := range MonthOrder {
		out = append(out, models.MonthStats{
			Month:       m.String()[:3],
			Season:      string(SeasonOf(m)),
			RideCount:   len(durations[m]),
			MeanMinutes: stats.Mean(durations[m]),
		})
	}
	return out
}

// WeekdayMonthCounts holds per-weekday ride counts for one month. It is the
// series behind one line in the season-faceted trend charts.
type WeekdayMonthCounts struct {
	Month  time.Month
	Counts map[time.Weekday]int
}

// ByWeekdayWithinSeason returns, for the given season, one weekday count
// series per month of that season, in calendar order.
func ByWeekdayWithinSeason(rides []models.Ride, season Season) []WeekdayMonthCounts {
	byMonth := make(map[time.Month]map[time.Weekday]int)
	for _, r := range rides {
		if SeasonOf(r.Month) != season {
			continue
		}
		if byMonth[r.Month] == nil {
			byMonth[r.Month] = make(map[time.Weekday]int)
		}
		byMonth[r.Month][r.Weekday]++
	}

	out := make([]WeekdayMonthCounts, 0, 3)
	for _, m := range MonthsOf(season) {
		counts := byMonth[m]
		if counts == nil {
			counts = make(map[time.Weekday]int)
		}
		out = append(out, WeekdayMonthCounts{Month: m, Counts: counts})
	}
	return out
}
