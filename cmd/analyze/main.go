package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/jengzang/bikeshare-analysis-go/internal/cluster"
	"github.com/jengzang/bikeshare-analysis-go/internal/config"
	"github.com/jengzang/bikeshare-analysis-go/internal/ingest"
	"github.com/jengzang/bikeshare-analysis-go/internal/pipeline"
	"github.com/jengzang/bikeshare-analysis-go/internal/report"
	"github.com/jengzang/bikeshare-analysis-go/internal/stations"
	"github.com/jengzang/bikeshare-analysis-go/internal/temporal"
	"github.com/jengzang/bikeshare-analysis-go/internal/viz"
)

func main() {
	configPath := flag.String("config", "", "path to config.yml (defaults applied when empty)")
	inputPath := flag.String("input", "", "trip CSV file (overrides config)")
	outDir := flag.String("out", "", "output directory (overrides config)")
	skipMaps := flag.Bool("skip-maps", false, "skip basemap rendering")
	flag.Parse()

	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}
	if *inputPath != "" {
		cfg.Input.Path = *inputPath
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}

	rides, err := ingest.LoadRides(cfg.Input.Path, cfg.Input)
	if err != nil {
		log.Fatal("Failed to load rides: ", err)
	}

	sts := stations.Extract(rides)
	cleaned := pipeline.Clean(rides, sts, cfg.Filters)
	if len(cleaned) == 0 {
		log.Fatal("No rides survived the admissibility filters")
	}

	weekdays := temporal.ByWeekday(cleaned)
	months := temporal.ByMonth(cleaned)

	clustered, result := cluster.AssignRides(cleaned, cfg.Clustering)
	hulls := cluster.Hulls(clustered, result)
	summaries := cluster.Summaries(clustered, result, hulls)

	if err := report.WriteAggregates(cfg.OutputDir, weekdays, months, summaries); err != nil {
		log.Fatal("Failed to write reports: ", err)
	}

	if err := viz.SeasonTrendCharts(cfg.OutputDir, clustered); err != nil {
		log.Fatal("Failed to render trend charts: ", err)
	}
	if err := viz.WeekdayCharts(cfg.OutputDir, weekdays); err != nil {
		log.Fatal("Failed to render weekday charts: ", err)
	}
	if err := viz.MonthCharts(cfg.OutputDir, months); err != nil {
		log.Fatal("Failed to render month charts: ", err)
	}

	if !*skipMaps {
		renderer := viz.NewMapRenderer(cfg.Map)
		if err := renderer.StationMap(filepath.Join(cfg.OutputDir, "stations_map.png"), sts); err != nil {
			log.Fatal("Failed to render station map: ", err)
		}
		if err := renderer.ClusterMap(filepath.Join(cfg.OutputDir, "cluster_map.png"), hulls, result.Centroids); err != nil {
			log.Fatal("Failed to render cluster map: ", err)
		}
	}

	log.Printf("[Analyze] Done: %d rides in, %d rides analyzed, output in %s",
		len(rides), len(cleaned), cfg.OutputDir)
}
