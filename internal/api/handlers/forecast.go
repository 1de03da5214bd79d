package handlers

import (
	"errors"
	"net/http"

	"electricity-forecast/internal/api/models"
	"electricity-forecast/internal/feed"
	"electricity-forecast/internal/forecast"
	"electricity-forecast/internal/model"

	"github.com/gin-gonic/gin"
)

// ForecastHandler handles forecast requests
type ForecastHandler struct {
	client *feed.Client
}

// NewForecastHandler creates a new forecast handler
func NewForecastHandler(client *feed.Client) *ForecastHandler {
	if client == nil {
		client = feed.NewClient("")
	}
	return &ForecastHandler{client: client}
}

// GetForecast handles GET /api/v1/forecast
func (h *ForecastHandler) GetForecast(c *gin.Context) {
	var req models.ForecastRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	resp, err := h.client.GetCountry(req.Country)
	if err != nil {
		writeFeedError(c, err)
		return
	}

	series, err := forecast.Normalize(resp, req.Region)
	if err != nil {
		var malformed *forecast.MalformedPayloadError
		if errors.As(err, &malformed) {
			// The feed handed us something we cannot normalize; the client
			// request itself was fine.
			c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "MALFORMED_PAYLOAD",
					Message: malformed.Error(),
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, buildForecastResponse(forecast.New(series)))
}

func writeFeedError(c *gin.Context, err error) {
	var feedErr *feed.FeedError
	if errors.As(err, &feedErr) {
		status := http.StatusBadGateway
		if feedErr.Code == "UNKNOWN_COUNTRY" {
			status = http.StatusNotFound
		}
		c.JSON(status, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    feedErr.Code,
				Message: feedErr.Message,
			},
		})
		return
	}
	c.JSON(http.StatusBadGateway, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "FEED_UNAVAILABLE",
			Message: err.Error(),
		},
	})
}

func buildForecastResponse(fc *forecast.Forecast) models.ForecastResponse {
	resp := models.ForecastResponse{
		Region:   fc.Region(),
		Currency: fc.Currency(),
		Window: models.TimeWindow{
			Start: fc.FirstDay().Date(),
			End:   fc.LastDay().Date(),
		},
		Overall: models.OverallStats{
			High:    toPricePoint(fc.OverallHigh()),
			Low:     toPricePoint(fc.OverallLow()),
			Average: fc.OverallAverage(),
		},
		BestSpan:  toSpanStat(fc.BestAverageSpan()),
		WorstSpan: toSpanStat(fc.WorstAverageSpan()),
	}

	for _, day := range fc.Days() {
		summary := models.DaySummary{
			Date: day.Date().Format("2006-01-02"),
			High: toPricePoint(day.HighestHour()),
			Low:  toPricePoint(day.LowestHour()),
		}
		for _, span := range day.TimeSpans() {
			summary.Spans = append(summary.Spans, models.SpanSummary{
				Label:   span.Label(),
				Average: span.Average(),
			})
		}
		for _, p := range day.Hours() {
			hv := models.HourValue{Time: p.Time}
			if p.Price.Valid {
				price := p.Price.Value
				pos := day.RelativePosition(price)
				hv.Price = &price
				hv.RelativePosition = &pos
			}
			summary.Hours = append(summary.Hours, hv)
		}
		resp.Days = append(resp.Days, summary)
	}

	return resp
}

func toPricePoint(p model.HourPoint) models.PricePoint {
	return models.PricePoint{Time: p.Time, Price: p.Price.Value}
}

func toSpanStat(sa forecast.SpanAverage) models.SpanStat {
	return models.SpanStat{Label: sa.Label, Average: sa.Average}
}
