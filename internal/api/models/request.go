package models

// ForecastRequest represents the query parameters for fetching a forecast
type ForecastRequest struct {
	Country string `form:"country" binding:"required"` // ISO 3166-1 alpha-2, e.g. "SE"
	Region  string `form:"region" binding:"required"`  // pricing zone name, e.g. "SE3"
}

// RegionsRequest represents the query parameters for listing regions
type RegionsRequest struct {
	Country string `form:"country" binding:"required"`
}
