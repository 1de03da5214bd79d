package forecast

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"electricity-forecast/internal/feed"
	"electricity-forecast/internal/model"
)

// dateFormat is the feed's compact numeric day format.
const dateFormat = "20060102"

// MalformedPayloadError reports a feed payload the normalizer cannot turn
// into a RegionSeries. It is not recoverable locally; the caller decides
// retry/fallback policy.
type MalformedPayloadError struct {
	Region string
	Detail string
	Cause  error
}

func (e *MalformedPayloadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed payload for region %q: %s: %v", e.Region, e.Detail, e.Cause)
	}
	return fmt.Sprintf("malformed payload for region %q: %s", e.Region, e.Detail)
}

func (e *MalformedPayloadError) Unwrap() error {
	return e.Cause
}

// Normalize converts one region of a raw feed payload into a canonical
// RegionSeries: every day aligned to exactly 24 hour-of-day positions, missing
// hours filled with absent placeholders, days sorted ascending by date.
//
// Normalization is all-or-nothing: on error no partially built series is
// returned. The input is not modified.
func Normalize(resp *feed.Response, regionName string) (*model.RegionSeries, error) {
	region, ok := findRegion(resp, regionName)
	if !ok {
		return nil, &MalformedPayloadError{
			Region: regionName,
			Detail: "region not present in payload",
		}
	}
	if len(region.Days) == 0 {
		return nil, &MalformedPayloadError{
			Region: regionName,
			Detail: "region has no days",
		}
	}

	days := make([]model.DayPoints, 0, len(region.Days))
	for _, rawDay := range region.Days {
		day, err := normalizeDay(rawDay, regionName)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	// Day order in the payload is not trusted.
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	return &model.RegionSeries{
		Name:     region.Name,
		Currency: region.Currency,
		Days:     days,
	}, nil
}

func findRegion(resp *feed.Response, name string) (feed.Region, bool) {
	if resp == nil {
		return feed.Region{}, false
	}
	for _, r := range resp.Regions {
		if r.Name == name {
			return r, true
		}
	}
	return feed.Region{}, false
}

func normalizeDay(rawDay feed.Day, regionName string) (model.DayPoints, error) {
	date, err := time.Parse(dateFormat, rawDay.Date)
	if err != nil {
		return model.DayPoints{}, &MalformedPayloadError{
			Region: regionName,
			Detail: fmt.Sprintf("day date %q does not match format %s", rawDay.Date, dateFormat),
			Cause:  err,
		}
	}

	offset := 0
	if rawDay.LeadingOffset != "" {
		offset, err = strconv.Atoi(rawDay.LeadingOffset)
		if err != nil || offset < 0 || offset >= model.HoursPerDay {
			return model.DayPoints{}, &MalformedPayloadError{
				Region: regionName,
				Detail: fmt.Sprintf("invalid leading offset %q for day %s", rawDay.LeadingOffset, rawDay.Date),
				Cause:  err,
			}
		}
	}
	if offset+len(rawDay.Hours) > model.HoursPerDay {
		return model.DayPoints{}, &MalformedPayloadError{
			Region: regionName,
			Detail: fmt.Sprintf("day %s has %d points at offset %d, exceeding %d hours",
				rawDay.Date, len(rawDay.Hours), offset, model.HoursPerDay),
		}
	}

	// Placeholders first: every hour-of-day position exists, absent until the
	// feed publishes a value for it.
	series := make([]model.HourPoint, model.HoursPerDay)
	for h := range series {
		series[h] = model.HourPoint{
			Time:  hourTime(date, h),
			Price: model.NoPrice(),
		}
	}

	// Points land at the hour-of-day position their label names, so alignment
	// survives even a feed with mid-day gaps; the label, not list position, is
	// authoritative.
	var seen [model.HoursPerDay]bool
	for _, rawHour := range rawDay.Hours {
		hour, err := strconv.Atoi(strings.TrimSpace(rawHour.Hour))
		if err != nil || hour < 0 || hour >= model.HoursPerDay {
			return model.DayPoints{}, &MalformedPayloadError{
				Region: regionName,
				Detail: fmt.Sprintf("invalid hour %q for day %s", rawHour.Hour, rawDay.Date),
				Cause:  err,
			}
		}
		if hour < offset {
			// The offset declares hours 0..offset-1 unpublished; a point
			// inside that range contradicts the payload's own metadata.
			return model.DayPoints{}, &MalformedPayloadError{
				Region: regionName,
				Detail: fmt.Sprintf("hour %q below leading offset %d for day %s", rawHour.Hour, offset, rawDay.Date),
			}
		}
		if seen[hour] {
			return model.DayPoints{}, &MalformedPayloadError{
				Region: regionName,
				Detail: fmt.Sprintf("duplicate hour %q for day %s", rawHour.Hour, rawDay.Date),
			}
		}
		seen[hour] = true

		price, err := parsePrice(rawHour.Price)
		if err != nil {
			// A price the feed did publish but we cannot parse must not enter
			// the model as a valid-looking zero.
			return model.DayPoints{}, &MalformedPayloadError{
				Region: regionName,
				Detail: fmt.Sprintf("invalid price %q for day %s hour %q", rawHour.Price, rawDay.Date, rawHour.Hour),
				Cause:  err,
			}
		}

		series[hour] = model.HourPoint{
			Time:  hourTime(date, hour),
			Price: model.PriceOf(price),
		}
	}

	return model.DayPoints{Date: date, Series: series}, nil
}

// parsePrice handles both feed variants: "," and "." decimal separators.
func parsePrice(s string) (float64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	return strconv.ParseFloat(normalized, 64)
}

func hourTime(date time.Time, hour int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, time.UTC)
}
