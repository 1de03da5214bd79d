package model

import "time"

// HoursPerDay is the length every normalized day series is aligned to.
const HoursPerDay = 24

// HourPoint is one hour of a day's price series.
// Immutable once constructed.
type HourPoint struct {
	Time  time.Time
	Price Price
}

// DayPoints is one calendar day of hourly points.
// Series always holds exactly HoursPerDay entries aligned by hour-of-day;
// hours the feed has not published yet are explicit absent placeholders.
type DayPoints struct {
	Date   time.Time
	Series []HourPoint
}

// RegionSeries is the full multi-day series for one pricing region.
// Days are sorted ascending by date. The value is treated as read-only for
// the lifetime of any aggregator built over it and replaced wholesale when a
// new region is selected.
type RegionSeries struct {
	Name     string
	Currency string
	Days     []DayPoints
}
