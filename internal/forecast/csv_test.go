package forecast

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"electricity-forecast/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSeriesCSV(t *testing.T) {
	prices := flatPrices(24, 42.5)
	prices[3] = model.NoPrice()
	series := seriesOf(dayPoints("2023-02-16", prices))

	path := filepath.Join(t.TempDir(), "forecast.csv")
	require.NoError(t, WriteSeriesCSV(path, series))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1+24)

	assert.Equal(t, []string{"region", "currency", "date", "hour", "time", "price", "present"}, rows[0])

	first := rows[1]
	assert.Equal(t, "SE3", first[0])
	assert.Equal(t, "SEK", first[1])
	assert.Equal(t, "2023-02-16", first[2])
	assert.Equal(t, "0", first[3])
	assert.Equal(t, "42.5", first[5])
	assert.Equal(t, "true", first[6])

	absent := rows[4] // hour 3
	assert.Equal(t, "3", absent[3])
	assert.Equal(t, "", absent[5])
	assert.Equal(t, "false", absent[6])
}
