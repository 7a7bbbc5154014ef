// Package providers contains one HTTP client per external API the planner
// aggregates. Every client takes a configurable base URL (tests point them
// at httptest servers) and uses a short fixed timeout; a call that exceeds
// it is treated as a terminal failure. Retries, where they exist, live in
// the services layer as ordered fallback strategies.
package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const userAgent = "smart-trip-planner/1.0 (multi-modal route comparison)"

// GeocodeMatch is a single geocoding result. Nominatim encodes coordinates
// as decimal-degree strings.
type GeocodeMatch struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NominatimClient looks up free-text addresses against the OSM Nominatim
// geocoding API.
type NominatimClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewNominatimClient(baseURL string) *NominatimClient {
	return &NominatimClient{
		httpClient: &http.Client{Timeout: 8 * time.Second},
		baseURL:    baseURL,
	}
}

// Search performs a single top-1 lookup. A query with no matches returns
// (nil, nil); only transport or decoding problems are errors.
func (c *NominatimClient) Search(ctx context.Context, query string) (*GeocodeMatch, error) {
	u := c.baseURL + "/search?" + url.Values{
		"q":              {query},
		"format":         {"json"},
		"addressdetails": {"1"},
		"limit":          {"1"},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating geocode request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding returned status %d", resp.StatusCode)
	}

	var results []GeocodeMatch
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decoding geocoding response: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}
