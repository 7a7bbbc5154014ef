// Package geo provides great-circle distance math and the synthetic
// travel-mode estimators built on top of it.
package geo

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/harshekka/smart-trip-planner/internal/domain/entities"
)

// EarthRadiusKm is the mean Earth radius used for all great-circle math.
const EarthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between two coordinates in
// kilometers, assuming a spherical Earth.
func HaversineKm(a, b entities.Coordinate) float64 {
	lat1Rad := a.Latitude * math.Pi / 180
	lat2Rad := b.Latitude * math.Pi / 180
	deltaLat := (b.Latitude - a.Latitude) * math.Pi / 180
	deltaLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// StraightLine returns a two-point line between origin and destination, used
// as the display geometry for modes with no routed path.
func StraightLine(origin, dest entities.Coordinate) orb.LineString {
	return orb.LineString{origin.Point(), dest.Point()}
}

// PathMidpoint returns the coordinate at the middle index of a routed path
// (index = floor(pointCount/2)). An empty path yields the fallback
// coordinate.
func PathMidpoint(path orb.LineString, fallback entities.Coordinate) entities.Coordinate {
	if len(path) == 0 {
		return fallback
	}
	return entities.CoordinateFromPoint(path[len(path)/2])
}
