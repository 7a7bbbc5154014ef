package entities

import "github.com/paulmach/orb"

// Coordinate represents a geographic point in decimal degrees. A coordinate
// is produced once by the geocoder and never mutated afterwards; every
// downstream component receives it by value.
type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// NewCoordinate creates a Coordinate value from latitude and longitude.
func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Latitude:  lat,
		Longitude: lon,
	}
}

// Point converts the coordinate to an orb.Point. orb stores points as
// (longitude, latitude), matching the GeoJSON ordering used by the routing
// provider's path geometry.
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// CoordinateFromPoint converts an orb (lng, lat) point back to a Coordinate.
func CoordinateFromPoint(p orb.Point) Coordinate {
	return Coordinate{
		Latitude:  p.Lat(),
		Longitude: p.Lon(),
	}
}
