package temporal

import "time"

// Season is one of the four fixed season buckets.
type Season string

// Season buckets
const (
	Spring Season = "Spring"
	Summer Season = "Summer"
	Fall   Season = "Fall"
	Winter Season = "Winter"
)

// seasonMonths is the fixed month-triple lookup. It is a named table, not an
// inference: every month maps to exactly one season.
var seasonMonths = map[Season][]time.Month{
	Spring: {time.March, time.April, time.May},
	Summer: {time.June, time.July, time.August},
	Fall:   {time.September, time.October, time.November},
	Winter: {time.December, time.January, time.February},
}

var seasonByMonth = func() map[time.Month]Season {
	m := make(map[time.Month]Season, 12)
	for season, months := range seasonMonths {
		for _, month := range months {
			m[month] = season
		}
	}
	return m
}()

// SeasonOf maps a month to its season bucket.
func SeasonOf(month time.Month) Season {
	return seasonByMonth[month]
}

// Seasons returns the season buckets in calendar order starting with spring.
func Seasons() []Season {
	return []Season{Spring, Summer, Fall, Winter}
}

// MonthsOf returns the month triple of a season in calendar order.
func MonthsOf(season Season) []time.Month {
	months := seasonMonths[season]
	out := make([]time.Month, len(months))
	copy(out, months)
	return out
}
