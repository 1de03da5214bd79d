package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"electricity-forecast/internal/feed"
	"electricity-forecast/internal/forecast"
)

// Demo:
// - Load a saved feed payload from sample_data.json
// - Normalize one region into a RegionSeries
// - Walk the aggregator tree to show how the models fit together
func main() {
	dataPath := flag.String("data", "sample_data.json", "Path to saved feed JSON (sample_data.json)")
	region := flag.String("region", "SE3", "Region to normalize")
	flag.Parse()

	raw, err := os.ReadFile(*dataPath)
	if err != nil {
		panic(err)
	}

	var resp feed.Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		panic(err)
	}
	if len(resp.Regions) == 0 {
		panic("no regions in JSON")
	}

	series, err := forecast.Normalize(&resp, *region)
	if err != nil {
		panic(err)
	}

	fc := forecast.New(series)
	fmt.Printf("%s (%s): %d days, overall average %.2f\n",
		fc.Region(), fc.Currency(), len(fc.Days()), fc.OverallAverage())

	for _, day := range fc.Days() {
		high := day.HighestHour()
		low := day.LowestHour()
		fmt.Printf("\n%s\n", day.Date().Format("2006-01-02"))
		if high.Price.Valid {
			fmt.Printf("  high %.2f at %02d:00 (position %.2f on the window scale)\n",
				high.Price.Value, high.Time.Hour(), day.RelativePosition(high.Price.Value))
			fmt.Printf("  low  %.2f at %02d:00 (position %.2f)\n",
				low.Price.Value, low.Time.Hour(), day.RelativePosition(low.Price.Value))
		} else {
			fmt.Println("  no published prices yet")
		}
		for _, span := range day.TimeSpans() {
			fmt.Printf("  %s avg %.2f\n", span.Label(), span.Average())
		}
	}

	best := fc.BestAverageSpan()
	worst := fc.WorstAverageSpan()
	fmt.Printf("\ncheapest span across days: %s (avg %.2f)\n", best.Label, best.Average)
	fmt.Printf("priciest span across days: %s (avg %.2f)\n", worst.Label, worst.Average)
}
