package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/harshekka/smart-trip-planner/internal/domain/entities"
)

// OpenAQClient reads raw particulate concentrations from the OpenAQ API.
// Unlike the WAQI feed it returns µg/m³, which the caller converts to an
// index via the EPA breakpoint table.
type OpenAQClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewOpenAQClient(baseURL string) *OpenAQClient {
	return &OpenAQClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
	}
}

type openAQResponse struct {
	Results []struct {
		Measurements []struct {
			Parameter string  `json:"parameter"`
			Value     float64 `json:"value"`
		} `json:"measurements"`
	} `json:"results"`
}

// LatestPM25 returns the most recent PM2.5 concentration within 30 km of a
// coordinate.
func (c *OpenAQClient) LatestPM25(ctx context.Context, coord entities.Coordinate) (float64, error) {
	u := c.baseURL + "/v2/latest?" + url.Values{
		"coordinates": {fmt.Sprintf("%f,%f", coord.Latitude, coord.Longitude)},
		"radius":      {"30000"},
		"parameter":   {"pm25"},
		"limit":       {"1"},
		"sort":        {"desc"},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, fmt.Errorf("creating pm25 request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("pm25 request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("pm25 lookup returned status %d", resp.StatusCode)
	}

	var body openAQResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decoding pm25 response: %w", err)
	}

	for _, result := range body.Results {
		for _, m := range result.Measurements {
			if m.Parameter == "pm25" {
				return m.Value, nil
			}
		}
	}
	return 0, fmt.Errorf("no pm25 measurement near %f,%f", coord.Latitude, coord.Longitude)
}
