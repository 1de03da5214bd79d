package handlers

import (
	"net/http"

	"electricity-forecast/internal/api/models"
	"electricity-forecast/internal/feed"

	"github.com/gin-gonic/gin"
)

// RegionsHandler handles region listing requests
type RegionsHandler struct {
	client *feed.Client
}

// NewRegionsHandler creates a new regions handler
func NewRegionsHandler(client *feed.Client) *RegionsHandler {
	if client == nil {
		client = feed.NewClient("")
	}
	return &RegionsHandler{client: client}
}

// ListRegions handles GET /api/v1/regions
//
// Region names come from the live feed payload; if the feed is unavailable we
// fall back to the saved regions.json directory so the frontend can still
// render a picker.
func (h *RegionsHandler) ListRegions(c *gin.Context) {
	var req models.RegionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "MISSING_PARAM",
				Message: "country query parameter is required",
			},
		})
		return
	}

	resp, err := h.client.GetCountry(req.Country)
	if err == nil {
		out := models.RegionsResponse{Country: resp.CountryCode}
		for _, r := range resp.Regions {
			out.Regions = append(out.Regions, models.RegionItem{
				Name:     r.Name,
				Currency: r.Currency,
			})
		}
		c.JSON(http.StatusOK, out)
		return
	}

	list, loadErr := feed.LoadRegions(feed.DefaultRegionsPath())
	if loadErr != nil {
		writeFeedError(c, err)
		return
	}

	out := models.RegionsResponse{Country: req.Country}
	for _, r := range list.Regions {
		if r.Country != req.Country {
			continue
		}
		out.Regions = append(out.Regions, models.RegionItem{
			Name:     r.Name,
			Currency: r.Currency,
		})
	}
	c.JSON(http.StatusOK, out)
}
