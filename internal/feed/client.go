package feed

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

// Client fetches forecast payloads from the upstream price feed.
type Client struct {
	BaseURL string
	Client  *http.Client
}

// NewClient creates a new feed client.
// If baseURL is empty, defaults to "https://api.elforecast.app".
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://api.elforecast.app"
	}
	return &Client{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FeedError represents an error response from the upstream feed.
type FeedError struct {
	StatusCode int
	Code       string
	Message    string
	RetryAfter string // For rate limit errors
}

func (e *FeedError) Error() string {
	return e.Message
}

// GetCountry fetches the raw multi-region payload for one country.
//
// If caching is enabled (ENABLE_FEED_CACHE=true), responses may be served from
// the in-memory cache. Caching is only intended for local development.
func (c *Client) GetCountry(countryCode string) (*Response, error) {
	if countryCode == "" {
		return nil, fmt.Errorf("country_code is required")
	}

	// Check cache first (only if enabled for development).
	cache := GetCache()
	if cache != nil {
		if cached, found := cache.Get(CacheKey(countryCode)); found {
			log.Printf("[Feed] Cache hit: using cached payload with %d regions (country=%s)",
				len(cached.Regions), countryCode)
			return cached, nil
		}
	}

	u, err := url.Parse(c.BaseURL + "/v1/forecast/" + url.PathEscape(countryCode))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	log.Printf("[Feed] Request: GET %s (country=%s)", u.Path, countryCode)

	req, err := http.NewRequest("GET", u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	startTime := time.Now()
	resp, err := c.Client.Do(req)
	duration := time.Since(startTime)
	if err != nil {
		log.Printf("[Feed] Request failed: %v (duration: %v)", err, duration)
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	log.Printf("[Feed] Response: %d %s (duration: %v, country=%s)",
		resp.StatusCode, resp.Status, duration, countryCode)

	switch resp.StatusCode {
	case http.StatusOK:
		// Success, continue
	case http.StatusNotFound:
		return nil, &FeedError{
			StatusCode: resp.StatusCode,
			Code:       "UNKNOWN_COUNTRY",
			Message:    fmt.Sprintf("No forecast feed for country %q", countryCode),
		}
	case http.StatusTooManyRequests:
		retryAfter := resp.Header.Get("Retry-After")
		log.Printf("[Feed] Error: 429 Rate Limit Exceeded - Retry after: %s (country=%s)",
			retryAfter, countryCode)
		return nil, &FeedError{
			StatusCode: resp.StatusCode,
			Code:       "RATE_LIMIT_EXCEEDED",
			Message:    fmt.Sprintf("Rate limit exceeded. Retry after: %s", retryAfter),
			RetryAfter: retryAfter,
		}
	default:
		log.Printf("[Feed] Error: %d %s (country=%s)", resp.StatusCode, resp.Status, countryCode)
		return nil, &FeedError{
			StatusCode: resp.StatusCode,
			Code:       "FEED_ERROR",
			Message:    fmt.Sprintf("Feed returned status %d: %s", resp.StatusCode, resp.Status),
		}
	}

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Printf("[Feed] Error decoding response: %v (country=%s)", err, countryCode)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	log.Printf("[Feed] Success: received %d regions (country=%s)", len(result.Regions), countryCode)

	if cache := GetCache(); cache != nil {
		cache.Set(CacheKey(countryCode), &result)
		log.Printf("[Feed] Cached payload (country=%s)", countryCode)
	}

	return &result, nil
}
