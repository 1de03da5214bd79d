package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"electricity-forecast/internal/feed"
)

// update-regions refreshes the saved regions.json directory by querying the
// feed for each requested country. The API's /regions endpoint uses the file
// as a fallback when the feed is down.
func main() {
	countries := flag.String("countries", "SE", "Comma-separated country codes to query")
	baseURL := flag.String("base-url", "", "Feed base URL (default: production feed)")
	outPath := flag.String("out", feed.DefaultRegionsPath(), "Output path for regions.json")
	flag.Parse()

	client := feed.NewClient(*baseURL)
	list := &feed.RegionList{
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	for _, country := range strings.Split(*countries, ",") {
		country = strings.TrimSpace(country)
		if country == "" {
			continue
		}
		resp, err := client.GetCountry(country)
		if err != nil {
			log.Printf("skipping %s: %v", country, err)
			continue
		}
		for _, r := range resp.Regions {
			list.Regions = append(list.Regions, feed.RegionInfo{
				Name:     r.Name,
				Country:  resp.CountryCode,
				Currency: r.Currency,
			})
		}
		log.Printf("%s: %d regions", country, len(resp.Regions))
	}

	if len(list.Regions) == 0 {
		fmt.Fprintln(os.Stderr, "no regions fetched, refusing to overwrite "+*outPath)
		os.Exit(1)
	}

	if err := feed.SaveRegions(list, *outPath); err != nil {
		log.Fatalf("failed to save regions: %v", err)
	}
	log.Printf("wrote %d regions to %s", len(list.Regions), *outPath)
}
