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

// CurrentWeather is the raw current-conditions block from Open-Meteo.
// WeatherCode is a numeric WMO interpretation code.
type CurrentWeather struct {
	Temperature float64 `json:"temperature_2m"`
	Humidity    float64 `json:"relative_humidity_2m"`
	WindSpeed   float64 `json:"wind_speed_10m"`
	WeatherCode int     `json:"weather_code"`
}

// OpenMeteoClient fetches current weather conditions. Open-Meteo needs no
// API key.
type OpenMeteoClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewOpenMeteoClient(baseURL string) *OpenMeteoClient {
	return &OpenMeteoClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
	}
}

// Current returns current conditions at a coordinate.
func (c *OpenMeteoClient) Current(ctx context.Context, coord entities.Coordinate) (*CurrentWeather, error) {
	u := c.baseURL + "/v1/forecast?" + url.Values{
		"latitude":         {fmt.Sprintf("%f", coord.Latitude)},
		"longitude":        {fmt.Sprintf("%f", coord.Longitude)},
		"current":          {"temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code"},
		"wind_speed_unit":  {"kmh"},
		"temperature_unit": {"celsius"},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}

	var body struct {
		Current *CurrentWeather `json:"current"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding weather response: %w", err)
	}
	if body.Current == nil {
		return nil, fmt.Errorf("weather response had no current block")
	}
	return body.Current, nil
}
