package services

import (
	"context"
	"log"
	"sync"

	"github.com/harshekka/smart-trip-planner/internal/config"
	"github.com/harshekka/smart-trip-planner/internal/domain/entities"
	"github.com/harshekka/smart-trip-planner/internal/providers"
)

// Enrichment bundles the destination context shown alongside a trip result:
// nearby hotels, top attractions and current weather. Every section is
// optional; a provider failure leaves its section empty.
type Enrichment struct {
	Hotels      []entities.Hotel      `json:"hotels"`
	Attractions []entities.Attraction `json:"attractions"`
	Weather     *entities.Weather     `json:"weather,omitempty"`
}

// EnrichmentService gathers destination context from three independent
// providers in parallel.
type EnrichmentService struct {
	amadeus  *providers.AmadeusClient
	overpass *providers.OverpassClient
	meteo    *providers.OpenMeteoClient
	cfg      config.SearchConfig
}

func NewEnrichmentService(amadeus *providers.AmadeusClient, overpass *providers.OverpassClient, meteo *providers.OpenMeteoClient, cfg config.SearchConfig) *EnrichmentService {
	return &EnrichmentService{
		amadeus:  amadeus,
		overpass: overpass,
		meteo:    meteo,
		cfg:      cfg,
	}
}

// Enrich fetches all destination context for a coordinate. Sections fail
// independently and silently; Enrich itself never errors.
func (s *EnrichmentService) Enrich(ctx context.Context, dest entities.Coordinate) *Enrichment {
	result := &Enrichment{
		Hotels:      []entities.Hotel{},
		Attractions: []entities.Attraction{},
	}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		result.Hotels = s.hotels(ctx, dest)
	}()
	go func() {
		defer wg.Done()
		result.Attractions = s.attractions(ctx, dest)
	}()
	go func() {
		defer wg.Done()
		result.Weather = s.weather(ctx, dest)
	}()
	wg.Wait()

	return result
}

func (s *EnrichmentService) hotels(ctx context.Context, dest entities.Coordinate) []entities.Hotel {
	if !s.amadeus.Configured() {
		log.Printf("[ENRICH] Hotel lookup skipped: no API credentials")
		return []entities.Hotel{}
	}

	hotels, err := s.amadeus.HotelsByGeocode(ctx, dest, s.cfg.HotelRadiusKm, s.cfg.HotelLimit)
	if err != nil {
		log.Printf("[ENRICH] Hotel lookup failed: %v", err)
		return []entities.Hotel{}
	}

	// Prices are fetched per hotel; a property without offers just stays
	// unpriced.
	var wg sync.WaitGroup
	for i := range hotels {
		wg.Add(1)
		go func(h *entities.Hotel) {
			defer wg.Done()
			price, err := s.amadeus.HotelOffer(ctx, h.HotelID)
			if err != nil {
				log.Printf("[ENRICH] No price for hotel %s: %v", h.HotelID, err)
				return
			}
			h.Price = price
		}(&hotels[i])
	}
	wg.Wait()
	return hotels
}

func (s *EnrichmentService) attractions(ctx context.Context, dest entities.Coordinate) []entities.Attraction {
	elements, err := s.overpass.NearbyAttractions(ctx, dest, s.cfg.AttractionRadiusM, s.cfg.AttractionLimit)
	if err != nil {
		log.Printf("[ENRICH] Attractions lookup failed: %v", err)
		return []entities.Attraction{}
	}

	// Unnamed nodes are useless in a list; duplicate names usually mean the
	// same place mapped twice.
	seen := make(map[string]bool)
	attractions := []entities.Attraction{}
	for _, el := range elements {
		name := el.Tags["name"]
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		kind := el.Tags["tourism"]
		if kind == "" {
			kind = el.Tags["historic"]
		}
		if kind == "" {
			kind = "attraction"
		}
		attractions = append(attractions, entities.Attraction{
			ID:       el.ID,
			Name:     name,
			Type:     kind,
			Location: entities.NewCoordinate(el.Lat, el.Lon),
		})
		if len(attractions) == maxAttractions {
			break
		}
	}
	return attractions
}

// maxAttractions caps the deduplicated attraction list.
const maxAttractions = 4

func (s *EnrichmentService) weather(ctx context.Context, dest entities.Coordinate) *entities.Weather {
	current, err := s.meteo.Current(ctx, dest)
	if err != nil {
		log.Printf("[ENRICH] Weather lookup failed: %v", err)
		return nil
	}

	label, icon, condition := mapWeatherCode(current.WeatherCode)
	return &entities.Weather{
		TempC:     current.Temperature,
		Humidity:  current.Humidity,
		WindKmh:   current.WindSpeed,
		Condition: condition,
		Label:     label,
		Icon:      icon,
	}
}

// mapWeatherCode translates a WMO interpretation code into a display label,
// an icon and a coarse condition class.
func mapWeatherCode(code int) (label, icon, condition string) {
	switch {
	case code == 0:
		return "Clear", "☀️", "clear"
	case code <= 2:
		return "Partly Cloudy", "⛅", "cloudy"
	case code == 3:
		return "Overcast", "☁️", "cloudy"
	case code <= 49:
		return "Foggy", "🌫️", "fog"
	case code <= 67:
		return "Rainy", "🌧️", "rain"
	case code <= 77:
		return "Snowy", "🌨️", "snow"
	case code <= 82:
		return "Rain Showers", "🌦️", "rain"
	case code <= 86:
		return "Snow Showers", "❄️", "snow"
	case code <= 99:
		return "Thunderstorm", "⛈️", "thunder"
	default:
		return "Unknown", "🌡️", "clear"
	}
}
