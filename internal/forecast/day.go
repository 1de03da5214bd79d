package forecast

import (
	"time"

	"electricity-forecast/internal/model"
)

// Day wraps one normalized DayPoints. It holds a non-owning back-reference to
// the Forecast it belongs to for cross-day comparisons.
type Day struct {
	points   model.DayPoints
	forecast *Forecast
	spans    []*TimeSpan
}

func newDay(points model.DayPoints, f *Forecast) *Day {
	d := &Day{points: points, forecast: f}
	for i := 0; i < len(points.Series); i += SpanHours {
		end := i + SpanHours
		if end > len(points.Series) {
			end = len(points.Series)
		}
		d.spans = append(d.spans, &TimeSpan{hours: points.Series[i:end]})
	}
	return d
}

// Date returns the day's calendar date.
func (d *Day) Date() time.Time {
	return d.points.Date
}

// Hours returns the day's 24 hourly points, some possibly with absent prices.
func (d *Day) Hours() []model.HourPoint {
	return d.points.Series
}

// TimeSpans returns the day partitioned into fixed 6-hour spans. Partition
// boundaries are fixed, not data-dependent.
func (d *Day) TimeSpans() []*TimeSpan {
	return d.spans
}

// HighestHour returns the day's max present-price point (earliest hour on
// ties, first point when all prices are absent).
func (d *Day) HighestHour() model.HourPoint {
	return highestHour(d.points.Series)
}

// LowestHour returns the day's min present-price point, same rules as
// HighestHour.
func (d *Day) LowestHour() model.HourPoint {
	return lowestHour(d.points.Series)
}

// CheapestSpan returns the day's span with the lowest average price, first
// span in canonical order on ties.
func (d *Day) CheapestSpan() *TimeSpan {
	cheapest := d.spans[0]
	for _, span := range d.spans[1:] {
		if span.Average() < cheapest.Average() {
			cheapest = span
		}
	}
	return cheapest
}

// PriciestSpan returns the day's span with the highest average price, same
// tie-break as CheapestSpan.
func (d *Day) PriciestSpan() *TimeSpan {
	priciest := d.spans[0]
	for _, span := range d.spans[1:] {
		if span.Average() > priciest.Average() {
			priciest = span
		}
	}
	return priciest
}

// RelativePosition places a price on the owning forecast's overall scale:
// (price - overallLow) / (overallHigh - overallLow). The scale spans all
// days, not just this one. A flat or all-absent series has no usable scale
// and resolves to the midpoint 0.5.
func (d *Day) RelativePosition(price float64) float64 {
	high := d.forecast.OverallHigh().Price
	low := d.forecast.OverallLow().Price
	if !high.Valid || !low.Valid || high.Value == low.Value {
		return 0.5
	}
	return (price - low.Value) / (high.Value - low.Value)
}
