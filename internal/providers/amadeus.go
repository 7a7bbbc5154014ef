package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/harshekka/smart-trip-planner/internal/domain/entities"
)

// AmadeusClient wraps the Amadeus self-service APIs used for hotel, airport
// and flight inventory. All calls authenticate with a client-credentials
// OAuth2 token, cached until shortly before expiry.
type AmadeusClient struct {
	httpClient *http.Client
	baseURL    string
	key        string
	secret     string

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func NewAmadeusClient(baseURL, key, secret string) *AmadeusClient {
	return &AmadeusClient{
		httpClient: &http.Client{Timeout: 8 * time.Second},
		baseURL:    baseURL,
		key:        key,
		secret:     secret,
	}
}

// Configured reports whether API credentials are present. Unconfigured
// clients make inventory lookups degrade instead of failing loudly.
func (c *AmadeusClient) Configured() bool {
	return c.key != "" && c.secret != ""
}

func (c *AmadeusClient) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.key},
		"client_secret": {c.secret},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("creating token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decoding token response: %w", err)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned no access token")
	}

	c.token = body.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(body.ExpiresIn-30) * time.Second)
	return c.token, nil
}

func (c *AmadeusClient) getJSON(ctx context.Context, path string, out any) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating inventory request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("inventory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("inventory endpoint returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding inventory response: %w", err)
	}
	return nil
}

// HotelsByGeocode lists hotels around a coordinate, 3-star and up.
func (c *AmadeusClient) HotelsByGeocode(ctx context.Context, coord entities.Coordinate, radiusKm, limit int) ([]entities.Hotel, error) {
	path := "/v1/reference-data/locations/hotels/by-geocode?" + url.Values{
		"latitude":   {fmt.Sprintf("%f", coord.Latitude)},
		"longitude":  {fmt.Sprintf("%f", coord.Longitude)},
		"radius":     {fmt.Sprintf("%d", radiusKm)},
		"radiusUnit": {"KM"},
		"ratings":    {"3,4,5"},
	}.Encode()

	var body struct {
		Data []struct {
			HotelID string `json:"hotelId"`
			Name    string `json:"name"`
			GeoCode struct {
				Latitude  float64 `json:"latitude"`
				Longitude float64 `json:"longitude"`
			} `json:"geoCode"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, path, &body); err != nil {
		return nil, err
	}

	if len(body.Data) > limit {
		body.Data = body.Data[:limit]
	}
	hotels := make([]entities.Hotel, 0, len(body.Data))
	for _, h := range body.Data {
		hotels = append(hotels, entities.Hotel{
			HotelID:  h.HotelID,
			Name:     h.Name,
			Location: entities.NewCoordinate(h.GeoCode.Latitude, h.GeoCode.Longitude),
		})
	}
	return hotels, nil
}

// HotelOffer fetches the live price for a single hotel. Queried per hotel
// because the sandbox rejects bulk queries when any property lacks
// inventory.
func (c *AmadeusClient) HotelOffer(ctx context.Context, hotelID string) (*entities.HotelPrice, error) {
	path := "/v3/shopping/hotel-offers?" + url.Values{
		"hotelIds": {hotelID},
		"adults":   {"1"},
	}.Encode()

	var body struct {
		Data []struct {
			Offers []struct {
				Price struct {
					Total    string `json:"total"`
					Currency string `json:"currency"`
				} `json:"price"`
			} `json:"offers"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, path, &body); err != nil {
		return nil, err
	}
	if len(body.Data) == 0 || len(body.Data[0].Offers) == 0 {
		return nil, fmt.Errorf("no offers for hotel %s", hotelID)
	}

	price := body.Data[0].Offers[0].Price
	return &entities.HotelPrice{Total: price.Total, Currency: price.Currency}, nil
}

// NearestAirport resolves a coordinate to the closest airport's IATA code.
func (c *AmadeusClient) NearestAirport(ctx context.Context, coord entities.Coordinate) (string, error) {
	path := "/v1/reference-data/locations/airports?" + url.Values{
		"latitude":  {fmt.Sprintf("%f", coord.Latitude)},
		"longitude": {fmt.Sprintf("%f", coord.Longitude)},
	}.Encode()

	var body struct {
		Data []struct {
			IataCode string `json:"iataCode"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, path, &body); err != nil {
		return "", err
	}
	if len(body.Data) == 0 || body.Data[0].IataCode == "" {
		return "", fmt.Errorf("no airport near %f,%f", coord.Latitude, coord.Longitude)
	}
	return body.Data[0].IataCode, nil
}

// FlightOffers searches one-way offers between two airports on a date
// (YYYY-MM-DD), at most 5 results, priced in INR.
func (c *AmadeusClient) FlightOffers(ctx context.Context, originIata, destIata, date string) ([]entities.FlightOffer, error) {
	path := "/v2/shopping/flight-offers?" + url.Values{
		"originLocationCode":      {originIata},
		"destinationLocationCode": {destIata},
		"departureDate":           {date},
		"adults":                  {"1"},
		"currencyCode":            {"INR"},
		"nonStop":                 {"false"},
		"max":                     {"5"},
	}.Encode()

	var body struct {
		Data []struct {
			ID          string `json:"id"`
			Itineraries []struct {
				Segments []struct {
					Departure struct {
						IataCode string `json:"iataCode"`
						At       string `json:"at"`
					} `json:"departure"`
					Arrival struct {
						IataCode string `json:"iataCode"`
						At       string `json:"at"`
					} `json:"arrival"`
					CarrierCode string `json:"carrierCode"`
				} `json:"segments"`
			} `json:"itineraries"`
			Price struct {
				Total    string `json:"total"`
				Currency string `json:"currency"`
			} `json:"price"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, path, &body); err != nil {
		return nil, err
	}

	offers := make([]entities.FlightOffer, 0, len(body.Data))
	for _, d := range body.Data {
		if len(d.Itineraries) == 0 || len(d.Itineraries[0].Segments) == 0 {
			continue
		}
		segments := d.Itineraries[0].Segments
		first, last := segments[0], segments[len(segments)-1]
		offers = append(offers, entities.FlightOffer{
			ID:          d.ID,
			Origin:      first.Departure.IataCode,
			Destination: last.Arrival.IataCode,
			Departure:   first.Departure.At,
			Arrival:     last.Arrival.At,
			Carrier:     first.CarrierCode,
			Price:       d.Price.Total,
			Currency:    d.Price.Currency,
		})
	}
	return offers, nil
}
