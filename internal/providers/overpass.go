package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/harshekka/smart-trip-planner/internal/domain/entities"
)

// OverpassElement is a tagged OSM node returned by an Overpass query.
type OverpassElement struct {
	ID   int64             `json:"id"`
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags"`
}

// OverpassClient queries the OSM Overpass API for points of interest.
type OverpassClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewOverpassClient(baseURL string) *OverpassClient {
	return &OverpassClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
	}
}

// NearbyAttractions returns tourist attraction, museum and monument nodes
// within radiusMeters of a coordinate, at most limit elements.
func (c *OverpassClient) NearbyAttractions(ctx context.Context, coord entities.Coordinate, radiusMeters, limit int) ([]OverpassElement, error) {
	query := fmt.Sprintf(`
	[out:json][timeout:15];
	(
	  node["tourism"="attraction"](around:%d,%f,%f);
	  node["tourism"="museum"](around:%d,%f,%f);
	  node["historic"="monument"](around:%d,%f,%f);
	);
	out center %d;
	`,
		radiusMeters, coord.Latitude, coord.Longitude,
		radiusMeters, coord.Latitude, coord.Longitude,
		radiusMeters, coord.Latitude, coord.Longitude,
		limit,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/interpreter", strings.NewReader(query))
	if err != nil {
		return nil, fmt.Errorf("creating attractions request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("attractions request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("attractions query returned status %d", resp.StatusCode)
	}

	var body struct {
		Elements []OverpassElement `json:"elements"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding attractions response: %w", err)
	}
	return body.Elements, nil
}
