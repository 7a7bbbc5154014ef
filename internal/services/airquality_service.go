package services

import (
	"context"
	"log"
	"math"

	"github.com/harshekka/smart-trip-planner/internal/domain/entities"
	"github.com/harshekka/smart-trip-planner/internal/providers"
)

// DefaultAQI is the last-resort "moderate" pollution index used when every
// provider in the chain fails.
const DefaultAQI = 50

// waqiDemoToken is the shared demo key; it covers most major cities and
// needs no registration.
const waqiDemoToken = "demo"

// aqiStrategy is one provider attempt in the resolution chain. A strategy
// either produces a positive index or an error; anything non-positive is
// treated as no answer.
type aqiStrategy struct {
	name string
	fn   func(ctx context.Context, coord entities.Coordinate) (int, error)
}

// AirQualityService resolves a coordinate to a pollution index. Providers
// are tried in priority order (registered WAQI key, WAQI demo key, OpenAQ
// PM2.5 converted through the EPA breakpoint table) and the first usable
// answer wins. The resolver never fails: exhausting the chain yields
// DefaultAQI, so the result is always >= 1.
type AirQualityService struct {
	strategies []aqiStrategy
}

func NewAirQualityService(waqi *providers.WAQIClient, openaq *providers.OpenAQClient, waqiToken string) *AirQualityService {
	s := &AirQualityService{}

	if waqiToken != "" {
		s.strategies = append(s.strategies, aqiStrategy{
			name: "waqi",
			fn: func(ctx context.Context, coord entities.Coordinate) (int, error) {
				return waqi.FeedByGeo(ctx, coord, waqiToken)
			},
		})
	}
	s.strategies = append(s.strategies,
		aqiStrategy{
			name: "waqi-demo",
			fn: func(ctx context.Context, coord entities.Coordinate) (int, error) {
				return waqi.FeedByGeo(ctx, coord, waqiDemoToken)
			},
		},
		aqiStrategy{
			name: "openaq-pm25",
			fn: func(ctx context.Context, coord entities.Coordinate) (int, error) {
				pm25, err := openaq.LatestPM25(ctx, coord)
				if err != nil {
					return 0, err
				}
				return PM25ToAQI(pm25), nil
			},
		},
	)
	return s
}

// Resolve walks the strategy chain and returns the first positive index, or
// DefaultAQI when the chain is exhausted.
func (s *AirQualityService) Resolve(ctx context.Context, coord entities.Coordinate) int {
	for _, strategy := range s.strategies {
		score, err := strategy.fn(ctx, coord)
		if err != nil {
			log.Printf("[AQI] Provider %s failed for (%.4f, %.4f): %v",
				strategy.name, coord.Latitude, coord.Longitude, err)
			continue
		}
		if score <= 0 {
			continue
		}
		return score
	}
	return DefaultAQI
}

// pm25Breakpoints is the EPA AQI breakpoint table: each row maps a PM2.5
// concentration range (µg/m³) to an index range.
var pm25Breakpoints = [][4]float64{
	{0, 12, 0, 50},
	{12.1, 35.4, 51, 100},
	{35.5, 55.4, 101, 150},
	{55.5, 150.4, 151, 200},
	{150.5, 250.4, 201, 300},
	{250.5, 500.4, 301, 500},
}

// PM25ToAQI converts a raw PM2.5 concentration to an AQI value by linear
// interpolation within its breakpoint bracket. Concentrations outside the
// table yield 0, which the resolver treats as no answer.
func PM25ToAQI(pm25 float64) int {
	for _, bp := range pm25Breakpoints {
		cLo, cHi, iLo, iHi := bp[0], bp[1], bp[2], bp[3]
		if pm25 >= cLo && pm25 <= cHi {
			return int(math.Round((iHi-iLo)/(cHi-cLo)*(pm25-cLo) + iLo))
		}
	}
	return 0
}
