package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/harshekka/smart-trip-planner/internal/domain/entities"
)

// WAQIClient reads the World Air Quality Index feed for a coordinate.
type WAQIClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewWAQIClient(baseURL string) *WAQIClient {
	return &WAQIClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
	}
}

type waqiResponse struct {
	Status string `json:"status"`
	Data   struct {
		// The feed reports "-" instead of a number for stations with no
		// current reading, so the field can't decode straight to an int.
		Aqi any `json:"aqi"`
	} `json:"data"`
}

// FeedByGeo returns the AQI for the station nearest a coordinate. Non-numeric
// or non-positive readings are reported as errors so callers can move down
// their fallback chain.
func (c *WAQIClient) FeedByGeo(ctx context.Context, coord entities.Coordinate, token string) (int, error) {
	u := fmt.Sprintf("%s/feed/geo:%f;%f/?token=%s", c.baseURL, coord.Latitude, coord.Longitude, token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, fmt.Errorf("creating aqi request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("aqi request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("aqi feed returned status %d", resp.StatusCode)
	}

	var body waqiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decoding aqi response: %w", err)
	}

	aqi, ok := body.Data.Aqi.(float64)
	if !ok || aqi <= 0 {
		return 0, fmt.Errorf("aqi feed returned no usable reading")
	}
	return int(aqi), nil
}
