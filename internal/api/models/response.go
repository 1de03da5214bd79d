package models

import "time"

// ForecastResponse represents the aggregate view of one region's forecast
type ForecastResponse struct {
	Region   string       `json:"region"`
	Currency string       `json:"currency"`
	Window   TimeWindow   `json:"window"`
	Overall  OverallStats `json:"overall"`
	BestSpan SpanStat     `json:"best_span"`
	WorstSpan SpanStat    `json:"worst_span"`
	Days     []DaySummary `json:"days"`
}

// TimeWindow represents the date range covered by a forecast
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// OverallStats contains cross-day statistics for the whole series
type OverallStats struct {
	High    PricePoint `json:"high"`
	Low     PricePoint `json:"low"`
	Average float64    `json:"average"`
}

// PricePoint is one hour and its price
type PricePoint struct {
	Time  time.Time `json:"time"`
	Price float64   `json:"price"`
}

// SpanStat is one fixed time-span slot's cross-day mean
type SpanStat struct {
	Label   string  `json:"label"` // "HH-HH"
	Average float64 `json:"average"`
}

// DaySummary contains one day's statistics and hourly values
type DaySummary struct {
	Date  string        `json:"date"` // YYYY-MM-DD
	High  PricePoint    `json:"high"`
	Low   PricePoint    `json:"low"`
	Spans []SpanSummary `json:"spans"`
	Hours []HourValue   `json:"hours"`
}

// SpanSummary is one 6-hour span of a single day
type SpanSummary struct {
	Label   string  `json:"label"`
	Average float64 `json:"average"`
}

// HourValue is one hourly point. Price is null when the feed has not
// published a value for that hour yet.
type HourValue struct {
	Time             time.Time `json:"time"`
	Price            *float64  `json:"price"`
	RelativePosition *float64  `json:"relative_position,omitempty"` // on the cross-day scale, present hours only
}

// RegionsResponse represents the list of known regions for a country
type RegionsResponse struct {
	Country string       `json:"country"`
	Regions []RegionItem `json:"regions"`
}

// RegionItem is one listed region
type RegionItem struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
