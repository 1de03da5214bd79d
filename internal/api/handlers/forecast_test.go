package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"electricity-forecast/internal/api/models"
	"electricity-forecast/internal/feed"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedPayload() string {
	var hours []string
	for h := 0; h < 24; h++ {
		hours = append(hours, fmt.Sprintf(`{"local_hour": "%02d", "local_price": "%d,50"}`, h, 30+h))
	}
	day := `{"date": "20230216", "hours": [` + strings.Join(hours, ",") + `]}`
	return `{
		"country_code": "SE",
		"regions": [
			{"name": "SE3", "currency": "SEK", "days": [` + day + `]}
		]
	}`
}

func newTestRouter(t *testing.T, feedHandler http.HandlerFunc) *gin.Engine {
	t.Helper()
	server := httptest.NewServer(feedHandler)
	t.Cleanup(server.Close)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	client := feed.NewClient(server.URL)
	router.GET("/api/v1/forecast", NewForecastHandler(client).GetForecast)
	router.GET("/api/v1/regions", NewRegionsHandler(client).ListRegions)
	return router
}

func TestGetForecast_OK(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(feedPayload()))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/forecast?country=SE&region=SE3", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ForecastResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "SE3", resp.Region)
	assert.Equal(t, "SEK", resp.Currency)
	assert.Equal(t, 53.5, resp.Overall.High.Price)
	assert.Equal(t, 30.5, resp.Overall.Low.Price)
	assert.Equal(t, "00-06", resp.BestSpan.Label)
	assert.Equal(t, "18-24", resp.WorstSpan.Label)

	require.Len(t, resp.Days, 1)
	day := resp.Days[0]
	assert.Equal(t, "2023-02-16", day.Date)
	require.Len(t, day.Hours, 24)
	require.NotNil(t, day.Hours[0].Price)
	assert.Equal(t, 30.5, *day.Hours[0].Price)
	require.NotNil(t, day.Hours[0].RelativePosition)
	assert.InDelta(t, 0, *day.Hours[0].RelativePosition, 1e-9)
	require.Len(t, day.Spans, 4)
}

func TestGetForecast_MissingParams(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(feedPayload()))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/forecast?country=SE", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
}

func TestGetForecast_UnknownRegionIsBadGateway(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(feedPayload()))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/forecast?country=SE&region=SE9", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadGateway, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "MALFORMED_PAYLOAD", resp.Error.Code)
}

func TestGetForecast_FeedDown(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/forecast?country=SE&region=SE3", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadGateway, w.Code)
}

func TestListRegions_OK(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(feedPayload()))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/regions?country=SE", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.RegionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SE", resp.Country)
	require.Len(t, resp.Regions, 1)
	assert.Equal(t, "SE3", resp.Regions[0].Name)
}

func TestListRegions_MissingCountry(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(feedPayload()))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/regions", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
