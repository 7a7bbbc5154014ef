package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/harshekka/smart-trip-planner/internal/domain/entities"
	"github.com/harshekka/smart-trip-planner/internal/providers"
)

var (
	// ErrInventoryNotConfigured means the provider credentials for this
	// lookup are absent.
	ErrInventoryNotConfigured = errors.New("inventory provider is not configured")

	// ErrNoNearbyAirport means a coordinate could not be mapped to an
	// airport.
	ErrNoNearbyAirport = errors.New("no airport found near location")

	// ErrUnknownStation means a city name could not be mapped to a railway
	// station code.
	ErrUnknownStation = errors.New("no railway station known for city")
)

// stationCodes maps recognizable city keywords to their principal railway
// station code. Matching is a case-insensitive substring check against the
// city text, so "Mumbai Central, Maharashtra" resolves like "mumbai".
var stationCodes = map[string]string{
	"mumbai":    "BCT",
	"delhi":     "NDLS",
	"bangalore": "SBC",
	"bengaluru": "SBC",
	"hyderabad": "HYB",
	"chennai":   "MAS",
	"kolkata":   "HWH",
	"jaipur":    "JP",
	"goa":       "MAO",
	"pune":      "PUNE",
	"ahmedabad": "ADI",
	"agra":      "AGC",
	"varanasi":  "BSB",
}

// StationCode resolves a free-text city name to a station code.
func StationCode(city string) (string, bool) {
	lowered := strings.ToLower(city)
	for keyword, code := range stationCodes {
		if strings.Contains(lowered, keyword) {
			return code, true
		}
	}
	return "", false
}

// InventoryService resolves real bookable flight and train options for a
// trip, as opposed to the synthetic estimates in the candidate set.
type InventoryService struct {
	amadeus  *providers.AmadeusClient
	rail     *providers.RailClient
	leadDays int
}

func NewInventoryService(amadeus *providers.AmadeusClient, rail *providers.RailClient, leadDays int) *InventoryService {
	return &InventoryService{
		amadeus:  amadeus,
		rail:     rail,
		leadDays: leadDays,
	}
}

// travelDate returns the search date for inventory lookups, a fixed number
// of days ahead so sandbox providers have inventory to return.
func (s *InventoryService) travelDate() string {
	return time.Now().AddDate(0, 0, s.leadDays).Format("2006-01-02")
}

// FlightOffers finds bookable flights between the airports nearest to the
// two coordinates.
func (s *InventoryService) FlightOffers(ctx context.Context, origin, dest entities.Coordinate) ([]entities.FlightOffer, error) {
	if !s.amadeus.Configured() {
		return nil, ErrInventoryNotConfigured
	}

	originIata, err := s.amadeus.NearestAirport(ctx, origin)
	if err != nil {
		return nil, errors.Join(ErrNoNearbyAirport, err)
	}
	destIata, err := s.amadeus.NearestAirport(ctx, dest)
	if err != nil {
		return nil, errors.Join(ErrNoNearbyAirport, err)
	}

	return s.amadeus.FlightOffers(ctx, originIata, destIata, s.travelDate())
}

// TrainOffers finds trains between the principal stations of two cities
// named in free text.
func (s *InventoryService) TrainOffers(ctx context.Context, fromCity, toCity string) ([]entities.TrainOffer, error) {
	if !s.rail.Configured() {
		return nil, ErrInventoryNotConfigured
	}

	fromCode, ok := StationCode(fromCity)
	if !ok {
		return nil, ErrUnknownStation
	}
	toCode, ok := StationCode(toCity)
	if !ok {
		return nil, ErrUnknownStation
	}

	return s.rail.TrainsBetween(ctx, fromCode, toCode, s.travelDate())
}
