// Package config centralizes all application configuration into typed structs.
//
// Defaults point every provider at its public endpoint; environment
// variables override them. Tests override the URLs to point at local fake
// servers instead.
package config

import (
	"os"
	"time"
)

// Config is the top-level configuration container.
type Config struct {
	Server    ServerConfig
	Providers ProviderConfig
	Search    SearchConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// ProviderConfig holds endpoints and credentials for the external APIs the
// planner aggregates. Key-less providers (OSRM, Nominatim, Open-Meteo,
// Overpass, OpenAQ) only carry a base URL.
type ProviderConfig struct {
	NominatimURL string
	OSRMURL      string
	WAQIURL      string
	WAQIToken    string
	OpenAQURL    string
	OpenMeteoURL string
	OverpassURL  string

	AmadeusURL    string
	AmadeusKey    string
	AmadeusSecret string

	RailURL  string
	RailKey  string
	RailHost string
}

// SearchConfig controls the enrichment lookups around the core search.
type SearchConfig struct {
	HotelRadiusKm     int
	HotelLimit        int
	AttractionRadiusM int
	AttractionLimit   int
	InventoryLeadDays int // offers are searched this many days ahead
}

// NewDefaultConfig returns a Config populated with the public provider
// endpoints and sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Providers: ProviderConfig{
			NominatimURL: "https://nominatim.openstreetmap.org",
			OSRMURL:      "https://router.project-osrm.org",
			WAQIURL:      "https://api.waqi.info",
			OpenAQURL:    "https://api.openaq.org",
			OpenMeteoURL: "https://api.open-meteo.com",
			OverpassURL:  "https://overpass-api.de",
			AmadeusURL:   "https://test.api.amadeus.com",
			RailURL:      "https://irctc1.p.rapidapi.com",
			RailHost:     "irctc1.p.rapidapi.com",
		},
		Search: SearchConfig{
			HotelRadiusKm:     5,
			HotelLimit:        4,
			AttractionRadiusM: 5000,
			AttractionLimit:   6,
			InventoryLeadDays: 2,
		},
	}
}

// Load builds the configuration from defaults plus environment overrides.
// Credentials only ever come from the environment.
func Load() *Config {
	cfg := NewDefaultConfig()

	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = ":" + port
	}
	overrideString(&cfg.Providers.NominatimURL, "NOMINATIM_URL")
	overrideString(&cfg.Providers.OSRMURL, "OSRM_URL")
	overrideString(&cfg.Providers.WAQIURL, "WAQI_URL")
	overrideString(&cfg.Providers.WAQIToken, "WAQI_API_KEY")
	overrideString(&cfg.Providers.OpenAQURL, "OPENAQ_URL")
	overrideString(&cfg.Providers.OpenMeteoURL, "OPEN_METEO_URL")
	overrideString(&cfg.Providers.OverpassURL, "OVERPASS_URL")
	overrideString(&cfg.Providers.AmadeusURL, "AMADEUS_URL")
	overrideString(&cfg.Providers.AmadeusKey, "AMADEUS_API_KEY")
	overrideString(&cfg.Providers.AmadeusSecret, "AMADEUS_API_SECRET")
	overrideString(&cfg.Providers.RailURL, "TRAIN_API_URL")
	overrideString(&cfg.Providers.RailKey, "TRAIN_API_KEY")
	overrideString(&cfg.Providers.RailHost, "TRAIN_API_HOST")

	return cfg
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
