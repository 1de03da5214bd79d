package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"electricity-forecast/internal/config"
	"electricity-forecast/internal/feed"
	"electricity-forecast/internal/forecast"
	"electricity-forecast/internal/model"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "summary":
		cmdSummary(os.Args[2:])
	case "table":
		cmdTable(os.Args[2:])
	case "export":
		cmdExport(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli summary --region SE3 [--data sample_data.json | --config config.yaml]")
	fmt.Println("  cli table   --region SE3 [--data sample_data.json | --config config.yaml]")
	fmt.Println("  cli export  --region SE3 --out results/forecast.csv [--data sample_data.json]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - --data reads a saved feed payload; without it the feed is queried live")
	fmt.Println("    using the config file's base URL and country")
	fmt.Println("  - summary prints overall stats and the cheapest/priciest 6-hour spans")
}

func loadSeries(dataPath, cfgPath, region string) (*model.RegionSeries, error) {
	var resp *feed.Response
	var err error

	if dataPath != "" {
		resp, err = feed.LoadJSON(dataPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", dataPath, err)
		}
	} else {
		if cfgPath == "" {
			return nil, fmt.Errorf("either --data or --config is required")
		}
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		client := feed.NewClient(cfg.Feed.BaseURL)
		client.Client.Timeout = time.Duration(cfg.Feed.TimeoutSeconds) * time.Second
		resp, err = client.GetCountry(cfg.Feed.Country)
		if err != nil {
			return nil, err
		}
		if region == "" {
			region = cfg.Feed.DefaultRegion
		}
	}

	if region == "" {
		return nil, fmt.Errorf("--region is required (payload has: %v)", feed.RegionNames(resp))
	}
	return forecast.Normalize(resp, region)
}

func cmdSummary(args []string) {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to saved feed JSON payload")
	cfgPath := fs.String("config", "", "Path to YAML config")
	region := fs.String("region", "", "Region name, e.g. SE3")
	_ = fs.Parse(args)

	series, err := loadSeries(*dataPath, *cfgPath, *region)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fc := forecast.New(series)
	high := fc.OverallHigh()
	low := fc.OverallLow()

	fmt.Printf("Region:   %s (%s)\n", fc.Region(), fc.Currency())
	fmt.Printf("Window:   %s .. %s (%d days)\n",
		fc.FirstDay().Date().Format("2006-01-02"),
		fc.LastDay().Date().Format("2006-01-02"),
		len(fc.Days()))
	fmt.Printf("Average:  %.2f\n", fc.OverallAverage())
	if high.Price.Valid {
		fmt.Printf("High:     %.2f at %s\n", high.Price.Value, high.Time.Format("2006-01-02 15:04"))
		fmt.Printf("Low:      %.2f at %s\n", low.Price.Value, low.Time.Format("2006-01-02 15:04"))
	} else {
		fmt.Println("High:     no published prices yet")
		fmt.Println("Low:      no published prices yet")
	}

	best := fc.BestAverageSpan()
	worst := fc.WorstAverageSpan()
	fmt.Printf("Cheapest span:  %s (avg %.2f)\n", best.Label, best.Average)
	fmt.Printf("Priciest span:  %s (avg %.2f)\n", worst.Label, worst.Average)
}

func cmdTable(args []string) {
	fs := flag.NewFlagSet("table", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to saved feed JSON payload")
	cfgPath := fs.String("config", "", "Path to YAML config")
	region := fs.String("region", "", "Region name, e.g. SE3")
	_ = fs.Parse(args)

	series, err := loadSeries(*dataPath, *cfgPath, *region)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fc := forecast.New(series)
	for _, day := range fc.Days() {
		fmt.Printf("%s\n", day.Date().Format("Monday, 2 Jan"))
		cheapest := day.CheapestSpan()
		for _, span := range day.TimeSpans() {
			marker := " "
			if span == cheapest {
				marker = "*"
			}
			fmt.Printf(" %s%s  avg %8.2f", marker, span.Label(), span.Average())
			low := span.LowestHour()
			if low.Price.Valid {
				fmt.Printf("  (low %.2f at %02d:00)", low.Price.Value, low.Time.Hour())
			}
			fmt.Println()
		}
	}
}

func cmdExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to saved feed JSON payload")
	cfgPath := fs.String("config", "", "Path to YAML config")
	region := fs.String("region", "", "Region name, e.g. SE3")
	outPath := fs.String("out", "results/forecast.csv", "Output CSV path")
	_ = fs.Parse(args)

	series, err := loadSeries(*dataPath, *cfgPath, *region)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := forecast.WriteSeriesCSV(*outPath, series); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *outPath)
}
