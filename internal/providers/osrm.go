package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/paulmach/orb"

	"github.com/harshekka/smart-trip-planner/internal/domain/entities"
)

// Profile is an OSRM routing profile.
type Profile string

const (
	ProfileDriving Profile = "driving"
	ProfileWalking Profile = "walking"
	ProfileCycling Profile = "cycling"
)

// Route is a single routed path between two coordinates.
type Route struct {
	DurationSec    float64
	DistanceMeters float64
	Geometry       orb.LineString
}

// DistanceKm returns the routed path length in kilometers.
func (r *Route) DistanceKm() float64 {
	return r.DistanceMeters / 1000
}

// OSRMClient fetches routed paths from an OSRM routing server.
type OSRMClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewOSRMClient(baseURL string) *OSRMClient {
	return &OSRMClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
	}
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Duration float64 `json:"duration"`
		Distance float64 `json:"distance"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

// FetchRoute requests the best route for a profile between two coordinates.
// A usable result requires the provider to report success and return at
// least one route.
func (c *OSRMClient) FetchRoute(ctx context.Context, profile Profile, origin, dest entities.Coordinate) (*Route, error) {
	u := fmt.Sprintf("%s/route/v1/%s/%f,%f;%f,%f?overview=full&geometries=geojson",
		c.baseURL, profile,
		origin.Longitude, origin.Latitude,
		dest.Longitude, dest.Latitude,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating route request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("routing request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("routing returned status %d", resp.StatusCode)
	}

	var body osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding routing response: %w", err)
	}
	if body.Code != "Ok" || len(body.Routes) == 0 {
		return nil, fmt.Errorf("no route for profile %s", profile)
	}

	best := body.Routes[0]
	geometry := make(orb.LineString, 0, len(best.Geometry.Coordinates))
	for _, pt := range best.Geometry.Coordinates {
		if len(pt) < 2 {
			continue
		}
		geometry = append(geometry, orb.Point{pt[0], pt[1]})
	}

	return &Route{
		DurationSec:    best.Duration,
		DistanceMeters: best.Distance,
		Geometry:       geometry,
	}, nil
}
