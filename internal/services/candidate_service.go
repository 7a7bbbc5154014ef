package services

import (
	"context"
	"log"
	"math"
	"sync"

	"github.com/paulmach/orb"

	"github.com/harshekka/smart-trip-planner/internal/domain/entities"
	"github.com/harshekka/smart-trip-planner/internal/geo"
	"github.com/harshekka/smart-trip-planner/internal/providers"
	"github.com/harshekka/smart-trip-planner/pkg/utils"
)

// Plausibility thresholds: a routed profile only yields candidates when its
// distance is realistic for the modes built on top of it.
const (
	maxTaxiKm    = 500.0
	maxBusKm     = 1000.0
	maxWalkingKm = 15.0
	maxCyclingKm = 50.0
)

// Fixed speed overrides and time factors. Walking and cycling ignore the
// provider's own duration in favor of a steady pace; motorbikes beat car
// traffic, buses trail it.
const (
	walkingSpeedKmh     = 6.4
	cyclingSpeedKmh     = 20.0
	motorbikeTimeFactor = 0.85
	busTimeFactor       = 1.5
)

// Per-kilometer fare rates with minimum fares, in whole currency units.
const (
	taxiRatePerKm      = 15
	taxiMinFare        = 50
	evRatePerKm        = 10
	evMinFare          = 40
	motorbikeRatePerKm = 5
	motorbikeMinFare   = 20
	busFlatFare        = 20
)

// CandidateService fans out to the routing provider for every profile and
// expands the successful results into the transport-mode candidates each
// profile realistically covers, plus the synthetic train/flight estimates.
type CandidateService struct {
	osrm *providers.OSRMClient
	aqi  *AirQualityService
}

func NewCandidateService(osrm *providers.OSRMClient, aqi *AirQualityService) *CandidateService {
	return &CandidateService{osrm: osrm, aqi: aqi}
}

// profileSlot carries one routing profile's outcome through the fan-out.
// Each goroutine writes only to its own slot.
type profileSlot struct {
	profile providers.Profile
	route   *providers.Route
	aqi     int
}

// Build resolves routes for all profiles between origin and destination and
// returns the expanded candidate set. One profile's failure never aborts the
// others; an entirely empty result is the orchestrator's problem.
func (s *CandidateService) Build(ctx context.Context, origin, dest entities.Coordinate) []entities.RouteCandidate {
	slots := []profileSlot{
		{profile: providers.ProfileDriving},
		{profile: providers.ProfileWalking},
		{profile: providers.ProfileCycling},
	}

	// Best-effort fan-out: collect what succeeds, log what doesn't.
	var wg sync.WaitGroup
	for i := range slots {
		wg.Add(1)
		go func(slot *profileSlot) {
			defer wg.Done()
			route, err := s.osrm.FetchRoute(ctx, slot.profile, origin, dest)
			if err != nil {
				log.Printf("[ROUTE] Profile %s failed: %v", slot.profile, err)
				return
			}
			slot.route = route
		}(&slots[i])
	}
	wg.Wait()

	// Pollution lookups for every distinct coordinate of interest: each
	// routed path's midpoint, plus the destination for the synthetic modes.
	// Calls are independent and interleave freely.
	var destAqi int
	wg.Add(1)
	go func() {
		defer wg.Done()
		destAqi = s.aqi.Resolve(ctx, dest)
	}()
	for i := range slots {
		if slots[i].route == nil {
			continue
		}
		wg.Add(1)
		go func(slot *profileSlot) {
			defer wg.Done()
			midpoint := geo.PathMidpoint(slot.route.Geometry, origin)
			slot.aqi = s.aqi.Resolve(ctx, midpoint)
		}(&slots[i])
	}
	wg.Wait()

	var candidates []entities.RouteCandidate
	nextID := 0
	emit := func(mode entities.TransportMode, name string, timeSec, lengthKm float64, cost string, aqi int, path orb.LineString, hint entities.Objective) {
		candidates = append(candidates, entities.RouteCandidate{
			ID:            nextID,
			Mode:          mode,
			Name:          name,
			TimeText:      utils.FormatDuration(timeSec),
			TimeSeconds:   timeSec,
			LengthKm:      lengthKm,
			Cost:          cost,
			AqiScore:      aqi,
			Coordinates:   path,
			ObjectiveHint: hint,
		})
		nextID++
	}

	for _, slot := range slots {
		if slot.route == nil {
			continue
		}
		km := slot.route.DistanceKm()

		switch slot.profile {
		case providers.ProfileDriving:
			if km <= maxTaxiKm {
				emit(entities.ModeTaxi, "Auto / Taxi",
					slot.route.DurationSec, km,
					distanceFare(km, taxiRatePerKm, taxiMinFare),
					slot.aqi, slot.route.Geometry, entities.ObjectiveFastest)
				emit(entities.ModeEV, "EV Car",
					slot.route.DurationSec, km,
					distanceFare(km, evRatePerKm, evMinFare),
					slot.aqi, slot.route.Geometry, entities.ObjectiveEco)
				emit(entities.ModeMotorbike, "Motorbike",
					slot.route.DurationSec*motorbikeTimeFactor, km,
					distanceFare(km, motorbikeRatePerKm, motorbikeMinFare),
					slot.aqi, slot.route.Geometry, entities.ObjectiveFastest)
			}
			if km <= maxBusKm {
				emit(entities.ModeBus, "Public Bus",
					slot.route.DurationSec*busTimeFactor, km,
					utils.FormatFare(busFlatFare),
					slot.aqi, slot.route.Geometry, entities.ObjectiveEco)
			}

		case providers.ProfileWalking:
			if km <= maxWalkingKm {
				emit(entities.ModeWalk, "Walking",
					km/walkingSpeedKmh*3600, km,
					utils.FormatFare(0),
					slot.aqi, slot.route.Geometry, entities.ObjectiveEco)
			}

		case providers.ProfileCycling:
			if km <= maxCyclingKm {
				emit(entities.ModeBicycle, "Bicycle",
					km/cyclingSpeedKmh*3600, km,
					utils.FormatFare(0),
					slot.aqi, slot.route.Geometry, entities.ObjectiveShortest)
			}
		}
	}

	// Synthetic modes: no routed path exists, so distance comes from the
	// great circle, geometry is the straight line, and pollution is read at
	// the destination.
	straightKm := geo.HaversineKm(origin, dest)
	straightLine := geo.StraightLine(origin, dest)

	if est, ok := geo.TrainEstimate(straightKm); ok {
		emit(entities.ModeTrain, "Train",
			est.TimeSeconds, est.DistanceKm,
			utils.FormatFare(est.Cost),
			destAqi, straightLine, "")
	}
	if est, ok := geo.FlightEstimate(straightKm); ok {
		emit(entities.ModeFlight, "Flight",
			est.TimeSeconds, est.DistanceKm,
			utils.FormatFare(est.Cost),
			destAqi, straightLine, "")
	}

	return candidates
}

// distanceFare computes a per-kilometer fare with a minimum.
func distanceFare(km float64, ratePerKm, minFare int) string {
	fare := int(math.Round(km * float64(ratePerKm)))
	if fare < minFare {
		fare = minFare
	}
	return utils.FormatFare(fare)
}
