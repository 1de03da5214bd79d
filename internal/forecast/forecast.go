// Package forecast turns raw feed payloads into a normalized RegionSeries and
// derives display statistics from it: daily and overall highs/lows, averages,
// and fixed 6-hour time-span summaries.
//
// Aggregators are cheap, read-only views over an immutable RegionSeries. They
// are rebuilt from scratch whenever the series is replaced; nothing here
// mutates after construction, so concurrent reads are safe.
package forecast

import (
	"electricity-forecast/internal/model"
)

// Forecast wraps the full multi-day series for one region and computes
// cross-day statistics.
//
// Callers hand it a series the normalizer produced; it assumes at least one
// day with the canonical 24-entry hour alignment.
type Forecast struct {
	series *model.RegionSeries
	days   []*Day

	overallHigh model.HourPoint
	overallLow  model.HourPoint
}

// New builds the aggregator tree over a normalized series.
func New(series *model.RegionSeries) *Forecast {
	f := &Forecast{series: series}
	for _, dp := range series.Days {
		f.days = append(f.days, newDay(dp, f))
	}

	// Chronological scan so the first occurrence wins on ties, across day
	// order first and hour order second.
	f.overallHigh = f.days[0].Hours()[0]
	f.overallLow = f.days[0].Hours()[0]
	for _, day := range f.days {
		for _, p := range day.Hours() {
			if !p.Price.Valid {
				continue
			}
			if !f.overallHigh.Price.Valid || p.Price.Value > f.overallHigh.Price.Value {
				f.overallHigh = p
			}
			if !f.overallLow.Price.Valid || p.Price.Value < f.overallLow.Price.Value {
				f.overallLow = p
			}
		}
	}
	return f
}

// Region returns the series' region name.
func (f *Forecast) Region() string {
	return f.series.Name
}

// Currency returns the feed currency, passed through verbatim.
func (f *Forecast) Currency() string {
	return f.series.Currency
}

// Days returns the per-day aggregators in chronological order.
func (f *Forecast) Days() []*Day {
	return f.days
}

// FirstDay returns the chronologically first day, used for labeling the
// forecast window.
func (f *Forecast) FirstDay() *Day {
	return f.days[0]
}

// LastDay returns the chronologically last day.
func (f *Forecast) LastDay() *Day {
	return f.days[len(f.days)-1]
}

// OverallHigh returns the max present-price point across all days' hours.
// If every price in the series is absent it returns the first point.
func (f *Forecast) OverallHigh() model.HourPoint {
	return f.overallHigh
}

// OverallLow returns the min present-price point across all days' hours,
// same rules as OverallHigh.
func (f *Forecast) OverallLow() model.HourPoint {
	return f.overallLow
}

// OverallAverage is the mean of all present prices across the whole series.
// Absent hours are excluded from the denominator; an all-absent series
// averages to 0.
func (f *Forecast) OverallAverage() float64 {
	total := 0.0
	count := 0
	for _, day := range f.days {
		for _, p := range day.Hours() {
			if p.Price.Valid {
				total += p.Price.Value
				count++
			}
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// SpanAverage is one fixed time-span slot's mean across every day.
type SpanAverage struct {
	Label   string
	Average float64
}

// TimeSpanAverages computes, for each of the 4 fixed slots, the arithmetic
// mean of that slot's per-day average taken across every day, in canonical
// slot order.
func (f *Forecast) TimeSpanAverages() []SpanAverage {
	out := make([]SpanAverage, 0, SpansPerDay)
	for slot := 0; slot < SpansPerDay; slot++ {
		total := 0.0
		for _, day := range f.days {
			total += day.TimeSpans()[slot].Average()
		}
		out = append(out, SpanAverage{
			Label:   f.days[0].TimeSpans()[slot].Label(),
			Average: total / float64(len(f.days)),
		})
	}
	return out
}

// BestAverageSpan returns the slot with the lowest (cheapest) cross-day mean.
// The first slot in canonical order wins ties.
func (f *Forecast) BestAverageSpan() SpanAverage {
	averages := f.TimeSpanAverages()
	best := averages[0]
	for _, sa := range averages[1:] {
		if sa.Average < best.Average {
			best = sa
		}
	}
	return best
}

// WorstAverageSpan returns the slot with the highest (most expensive)
// cross-day mean, first slot wins ties.
func (f *Forecast) WorstAverageSpan() SpanAverage {
	averages := f.TimeSpanAverages()
	worst := averages[0]
	for _, sa := range averages[1:] {
		if sa.Average > worst.Average {
			worst = sa
		}
	}
	return worst
}
