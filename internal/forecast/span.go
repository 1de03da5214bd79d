package forecast

import (
	"fmt"

	"electricity-forecast/internal/model"
)

// SpanHours is the fixed time-span chunk size. With 24-hour days this yields
// 4 spans per day: 00-06, 06-12, 12-18, 18-24.
const SpanHours = 6

// SpansPerDay is the number of fixed spans in one day.
const SpansPerDay = model.HoursPerDay / SpanHours

// TimeSpan wraps one contiguous 6-hour chunk of a day's series.
type TimeSpan struct {
	hours []model.HourPoint
}

// Hours returns the span's hourly points.
func (s *TimeSpan) Hours() []model.HourPoint {
	return s.hours
}

// Average is the mean of the span's present prices. Hours with an absent
// price are excluded from both sum and count. A span with no present prices
// averages to 0, never NaN.
func (s *TimeSpan) Average() float64 {
	total := 0.0
	count := 0
	for _, h := range s.hours {
		if h.Price.Valid {
			total += h.Price.Value
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// HighestHour returns the span's max present-price point. Ties go to the
// earliest hour; if every price is absent, the first point is returned.
func (s *TimeSpan) HighestHour() model.HourPoint {
	return highestHour(s.hours)
}

// LowestHour returns the span's min present-price point, same rules as
// HighestHour.
func (s *TimeSpan) LowestHour() model.HourPoint {
	return lowestHour(s.hours)
}

// Label formats the span as "HH-HH", start hour to exclusive end hour on a
// zero-padded 24-hour clock (e.g. "00-06", "18-24").
func (s *TimeSpan) Label() string {
	start := s.hours[0].Time.Hour()
	end := s.hours[len(s.hours)-1].Time.Hour() + 1
	return fmt.Sprintf("%02d-%02d", start, end)
}

func highestHour(points []model.HourPoint) model.HourPoint {
	high := points[0]
	for _, p := range points[1:] {
		if !p.Price.Valid {
			continue
		}
		// Strict comparison keeps the first occurrence on ties.
		if !high.Price.Valid || p.Price.Value > high.Price.Value {
			high = p
		}
	}
	return high
}

func lowestHour(points []model.HourPoint) model.HourPoint {
	low := points[0]
	for _, p := range points[1:] {
		if !p.Price.Valid {
			continue
		}
		if !low.Price.Valid || p.Price.Value < low.Price.Value {
			low = p
		}
	}
	return low
}
