package forecast

import (
	"math"
	"testing"
	"time"

	"electricity-forecast/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spanOf(hour0 int, prices ...model.Price) *TimeSpan {
	date := time.Date(2023, 2, 16, 0, 0, 0, 0, time.UTC)
	hours := make([]model.HourPoint, 0, len(prices))
	for i, p := range prices {
		hours = append(hours, model.HourPoint{
			Time:  date.Add(time.Duration(hour0+i) * time.Hour),
			Price: p,
		})
	}
	return &TimeSpan{hours: hours}
}

func TestTimeSpanAverage_ExcludesAbsentHours(t *testing.T) {
	span := spanOf(0, model.PriceOf(10), model.NoPrice(), model.PriceOf(20))

	// Absent hours leave both sum and count, so [10, absent, 20] averages to
	// 15, not 10.
	assert.InDelta(t, 15, span.Average(), 1e-9)
}

func TestTimeSpanAverage_AllAbsentIsZeroNotNaN(t *testing.T) {
	span := spanOf(0, model.NoPrice(), model.NoPrice())

	avg := span.Average()
	assert.False(t, math.IsNaN(avg))
	assert.Equal(t, 0.0, avg)
}

func TestTimeSpanAverage_ZeroPriceCounts(t *testing.T) {
	span := spanOf(0, model.PriceOf(0), model.PriceOf(10))

	assert.InDelta(t, 5, span.Average(), 1e-9)
}

func TestTimeSpanHighestHour_TieBreaksToEarliestHour(t *testing.T) {
	span := spanOf(0,
		model.PriceOf(10),
		model.PriceOf(30),
		model.PriceOf(30),
		model.PriceOf(20),
	)

	high := span.HighestHour()
	require.True(t, high.Price.Valid)
	assert.Equal(t, 30.0, high.Price.Value)
	assert.Equal(t, 1, high.Time.Hour())
}

func TestTimeSpanLowestHour_SkipsAbsentAndTieBreaks(t *testing.T) {
	span := spanOf(0,
		model.NoPrice(),
		model.PriceOf(5),
		model.PriceOf(5),
		model.PriceOf(9),
	)

	low := span.LowestHour()
	require.True(t, low.Price.Valid)
	assert.Equal(t, 5.0, low.Price.Value)
	assert.Equal(t, 1, low.Time.Hour())
}

func TestTimeSpanHighLow_AllAbsentReturnsFirstPoint(t *testing.T) {
	span := spanOf(6, model.NoPrice(), model.NoPrice(), model.NoPrice())

	high := span.HighestHour()
	low := span.LowestHour()
	assert.False(t, high.Price.Valid)
	assert.False(t, low.Price.Valid)
	assert.Equal(t, 6, high.Time.Hour())
	assert.Equal(t, 6, low.Time.Hour())
}

func TestTimeSpanLabel(t *testing.T) {
	tests := []struct {
		hour0 int
		want  string
	}{
		{0, "00-06"},
		{6, "06-12"},
		{12, "12-18"},
		{18, "18-24"},
	}
	for _, tt := range tests {
		span := spanOf(tt.hour0,
			model.PriceOf(1), model.PriceOf(2), model.PriceOf(3),
			model.PriceOf(4), model.PriceOf(5), model.PriceOf(6),
		)
		assert.Equal(t, tt.want, span.Label())
	}
}
