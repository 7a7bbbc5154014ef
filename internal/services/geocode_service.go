package services

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/harshekka/smart-trip-planner/internal/domain/entities"
	"github.com/harshekka/smart-trip-planner/internal/providers"
)

// ErrAddressNotFound means every relaxation attempt came back empty.
var ErrAddressNotFound = errors.New("address could not be resolved")

// GeocodeService resolves free-text addresses to coordinates with
// progressive query relaxation: the verbatim address first, then a
// simplified first/middle/last-part query, then just the first two parts.
// The first attempt that returns a match wins.
type GeocodeService struct {
	client *providers.NominatimClient
}

func NewGeocodeService(client *providers.NominatimClient) *GeocodeService {
	return &GeocodeService{client: client}
}

// relaxedQueries builds the ordered lookup attempts for an address.
func relaxedQueries(address string) []string {
	queries := []string{address}

	var parts []string
	for _, p := range strings.Split(address, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	if len(parts) >= 3 {
		simplified := parts[0] + ", " + parts[len(parts)/2] + ", " + parts[len(parts)-1]
		queries = append(queries, simplified)
	}
	if len(parts) >= 2 {
		queries = append(queries, parts[0]+", "+parts[1])
	}
	return queries
}

// Resolve geocodes an address, trying each relaxed query in order. It
// returns ErrAddressNotFound only after every attempt returned no result or
// failed.
func (s *GeocodeService) Resolve(ctx context.Context, address string) (entities.Coordinate, error) {
	for _, query := range relaxedQueries(address) {
		match, err := s.client.Search(ctx, query)
		if err != nil {
			log.Printf("[GEOCODE] Lookup %q failed: %v", query, err)
			continue
		}
		if match == nil {
			continue
		}

		lat, latErr := strconv.ParseFloat(match.Lat, 64)
		lon, lonErr := strconv.ParseFloat(match.Lon, 64)
		if latErr != nil || lonErr != nil {
			log.Printf("[GEOCODE] Discarding malformed coordinates for %q", query)
			continue
		}
		return entities.NewCoordinate(lat, lon), nil
	}
	return entities.Coordinate{}, ErrAddressNotFound
}

// UnresolvedToken names the part of an address worth showing in a
// not-found message: its first comma-separated segment.
func UnresolvedToken(address string) string {
	token, _, _ := strings.Cut(address, ",")
	return strings.TrimSpace(token)
}
