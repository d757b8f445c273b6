package report

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"

	"github.com/jengzang/bikeshare-analysis-go/internal/models"
)

// writeCSV renders a slice of aggregate rows as a CSV file in dir.
func writeCSV(dir, name string, rows interface{}) error {
	df := dataframe.LoadStructs(rows)
	if df.Error() != nil {
		return fmt.Errorf("failed to build dataframe for %s: %w", name, df.Error())
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := df.WriteCSV(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteAggregates exports the aggregate views behind the plots as
// machine-readable CSV files, so every rendered number is auditable.
func WriteAggregates(dir string, weekdays []models.WeekdayStats, months []models.MonthStats, clusters []models.ClusterStats) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	if err := writeCSV(dir, "weekday_stats.csv", weekdays); err != nil {
		return err
	}
	if err := writeCSV(dir, "month_stats.csv", months); err != nil {
		return err
	}
	if err := writeCSV(dir, "cluster_stats.csv", clusters); err != nil {
		return err
	}

	log.Printf("[Report] Wrote aggregate CSVs to %s", dir)
	return nil
}
