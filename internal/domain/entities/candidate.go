package entities

import "github.com/paulmach/orb"

// TransportMode identifies the concrete transport option behind a route
// candidate. The mode is assigned when the candidate is created and carried
// through the whole pipeline; emission rates, markers and icons are looked
// up by mode, never re-parsed from the display name.
type TransportMode string

const (
	ModeTaxi      TransportMode = "taxi"
	ModeEV        TransportMode = "ev"
	ModeMotorbike TransportMode = "motorbike"
	ModeBus       TransportMode = "bus"
	ModeWalk      TransportMode = "walk"
	ModeBicycle   TransportMode = "bicycle"
	ModeTrain     TransportMode = "train"
	ModeFlight    TransportMode = "flight"

	// ModeUnknown covers candidates whose transport identity cannot be
	// determined; they emit nothing and classify as "Unknown".
	ModeUnknown TransportMode = "unknown"
)

// Objective is a provider-side hint of which ranking axis a candidate most
// naturally satisfies. Advisory only; the ranker computes its own winners.
type Objective string

const (
	ObjectiveFastest  Objective = "fastest"
	ObjectiveEco      Objective = "eco"
	ObjectiveShortest Objective = "shortest"
)

// EmissionTag classifies a candidate's CO2 output with a display marker.
type EmissionTag struct {
	Text   string `json:"text"`
	Marker string `json:"marker"`
}

// RouteCandidate is one concrete transport option returned for a search.
//
// ID is unique and contiguous from 0 within a single result set, assigned in
// emission order; it is the only key used for selection and map rendering.
// Coordinates, once set, are never mutated; later pipeline stages only fill
// in the derived fields (Aqi, AqiBadge, CO2Emission, EmissionTag, Tags, Rec).
type RouteCandidate struct {
	ID            int            `json:"id"`
	Mode          TransportMode  `json:"mode"`
	Name          string         `json:"name"`
	TimeText      string         `json:"time_text"`
	TimeSeconds   float64        `json:"time_sec"`
	LengthKm      float64        `json:"length_km"`
	Cost          string         `json:"cost"`
	AqiScore      int            `json:"aqi_score"`
	Coordinates   orb.LineString `json:"coordinates,omitempty"`
	ObjectiveHint Objective      `json:"objective,omitempty"`

	// Derived fields, populated after candidate creation.
	Aqi         string      `json:"aqi"`
	AqiBadge    string      `json:"aqi_badge"`
	CO2Emission int         `json:"co2_emission"`
	EmissionTag EmissionTag `json:"emission_tag"`
	Tags        []string    `json:"tags"`
	Rec         string      `json:"rec"`
}
