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

// RailClient fetches trains between two station codes from the RapidAPI
// IRCTC endpoint.
type RailClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	apiHost    string
}

func NewRailClient(baseURL, apiKey, apiHost string) *RailClient {
	return &RailClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		apiHost:    apiHost,
	}
}

// Configured reports whether an API key is present.
func (c *RailClient) Configured() bool {
	return c.apiKey != ""
}

type railResponse struct {
	Data []struct {
		TrainNumber     string `json:"train_number"`
		TrainName       string `json:"train_name"`
		FromSta         string `json:"from_sta"`
		ToSta           string `json:"to_sta"`
		Duration        string `json:"duration"`
		FromStationName string `json:"from_station_name"`
		ToStationName   string `json:"to_station_name"`
	} `json:"data"`
}

// TrainsBetween lists trains running between two station codes on a date
// (YYYY-MM-DD).
func (c *RailClient) TrainsBetween(ctx context.Context, fromCode, toCode, date string) ([]entities.TrainOffer, error) {
	u := c.baseURL + "/api/v3/trainBetweenStations?" + url.Values{
		"fromStationCode": {fromCode},
		"toStationCode":   {toCode},
		"dateOfJourney":   {date},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating train request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.apiHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("train request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("train lookup returned status %d", resp.StatusCode)
	}

	var body railResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding train response: %w", err)
	}

	offers := make([]entities.TrainOffer, 0, len(body.Data))
	for _, t := range body.Data {
		fromStation := t.FromStationName
		if fromStation == "" {
			fromStation = fromCode
		}
		toStation := t.ToStationName
		if toStation == "" {
			toStation = toCode
		}
		offers = append(offers, entities.TrainOffer{
			ID:          t.TrainNumber,
			TrainName:   t.TrainName,
			TrainNumber: t.TrainNumber,
			Departure:   t.FromSta,
			Arrival:     t.ToSta,
			Duration:    t.Duration,
			FromStation: fromStation,
			ToStation:   toStation,
		})
	}
	return offers, nil
}
