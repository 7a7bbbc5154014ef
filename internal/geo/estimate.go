package geo

import "math"

// Rail and air travel have no routing-provider coverage, so their estimates
// are derived from the straight-line distance between the endpoints.
const (
	// TrainMinKm is the minimum straight-line distance for a train option;
	// shorter intra-city trips don't realistically take a train.
	TrainMinKm = 20.0
	// RailCurvatureFactor inflates the straight-line distance to approximate
	// actual track length.
	RailCurvatureFactor = 1.3
	TrainSpeedKmh       = 80.0
	TrainCostPerKm      = 2.0
	TrainMinCost        = 100

	// FlightMinKm is the minimum straight-line distance for a flight option.
	FlightMinKm    = 200.0
	FlightSpeedKmh = 800.0
	// FlightOverheadSec covers boarding, taxiing and airport transfers.
	FlightOverheadSec = 5400.0
	FlightCostPerKm   = 5.0
	FlightMinCost     = 3000
)

// Estimate is a synthetic travel estimate for a mode with no routed path.
type Estimate struct {
	TimeSeconds float64
	DistanceKm  float64
	Cost        int
}

// TrainEstimate derives a rail travel estimate from the straight-line
// distance. The second return value is false when the trip is too short for
// a train option.
func TrainEstimate(straightKm float64) (Estimate, bool) {
	if straightKm < TrainMinKm {
		return Estimate{}, false
	}
	railKm := straightKm * RailCurvatureFactor
	cost := int(math.Round(railKm * TrainCostPerKm))
	if cost < TrainMinCost {
		cost = TrainMinCost
	}
	return Estimate{
		TimeSeconds: railKm / TrainSpeedKmh * 3600,
		DistanceKm:  railKm,
		Cost:        cost,
	}, true
}

// FlightEstimate derives an air travel estimate from the straight-line
// distance. The second return value is false when the trip is too short for
// a flight option.
func FlightEstimate(straightKm float64) (Estimate, bool) {
	if straightKm < FlightMinKm {
		return Estimate{}, false
	}
	cost := int(math.Round(straightKm * FlightCostPerKm))
	if cost < FlightMinCost {
		cost = FlightMinCost
	}
	return Estimate{
		TimeSeconds: straightKm/FlightSpeedKmh*3600 + FlightOverheadSec,
		DistanceKm:  straightKm,
		Cost:        cost,
	}, true
}
