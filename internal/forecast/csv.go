package forecast

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"electricity-forecast/internal/model"
)

// WriteSeriesCSV writes a normalized series as one row per hour.
// Absent hours are written with an empty price and present=false.
func WriteSeriesCSV(path string, series *model.RegionSeries) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"region",
		"currency",
		"date",
		"hour",
		"time",
		"price",
		"present",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, day := range series.Days {
		for _, p := range day.Series {
			price := ""
			if p.Price.Valid {
				price = strconv.FormatFloat(p.Price.Value, 'f', -1, 64)
			}
			row := []string{
				series.Name,
				series.Currency,
				day.Date.Format("2006-01-02"),
				strconv.Itoa(p.Time.Hour()),
				fmtTime(p.Time),
				price,
				strconv.FormatBool(p.Price.Valid),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	return w.Error()
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
