// Package rank computes derived metrics for route candidates and orders the
// candidate set along the four competing objectives: time, cost, pollution
// and distance.
package rank

import (
	"math"

	"github.com/harshekka/smart-trip-planner/internal/domain/entities"
)

// emissionRates maps each transport mode to its CO2 output in grams per
// kilometer. Modes without an entry (ModeUnknown) emit 0 and classify as
// "Unknown".
var emissionRates = map[entities.TransportMode]int{
	entities.ModeEV:        0,
	entities.ModeFlight:    250,
	entities.ModeTaxi:      120,
	entities.ModeBus:       60,
	entities.ModeMotorbike: 60,
	entities.ModeTrain:     40,
	entities.ModeWalk:      0,
	entities.ModeBicycle:   0,
}

// emissionTags classifies each mode's overall emission footprint. Note the
// classification is per mode, not per computed gram value: walking and EV
// both emit 0 g/km but EV is tagged "Zero Emission" while walking is
// "Low Emission", mirroring how the options are presented.
var emissionTags = map[entities.TransportMode]entities.EmissionTag{
	entities.ModeEV:        {Text: "Zero Emission", Marker: "🟢"},
	entities.ModeFlight:    {Text: "High Emission", Marker: "🔴"},
	entities.ModeTaxi:      {Text: "High Emission", Marker: "🔴"},
	entities.ModeBus:       {Text: "Medium Emission", Marker: "🟡"},
	entities.ModeMotorbike: {Text: "Medium Emission", Marker: "🟡"},
	entities.ModeTrain:     {Text: "Low Emission", Marker: "🟢"},
	entities.ModeWalk:      {Text: "Low Emission", Marker: "🟢"},
	entities.ModeBicycle:   {Text: "Low Emission", Marker: "🟢"},
}

// EmissionRate returns the CO2 rate in grams per kilometer for a mode.
func EmissionRate(mode entities.TransportMode) int {
	return emissionRates[mode]
}

// CO2Grams computes total CO2 output for a candidate's distance. Pure
// function of mode and distance.
func CO2Grams(mode entities.TransportMode, lengthKm float64) int {
	return int(math.Round(lengthKm * float64(EmissionRate(mode))))
}

// EmissionTagFor returns the emission classification for a mode.
func EmissionTagFor(mode entities.TransportMode) entities.EmissionTag {
	if tag, ok := emissionTags[mode]; ok {
		return tag
	}
	return entities.EmissionTag{Text: "Unknown"}
}

// AqiBadge maps a pollution index to its display classification.
func AqiBadge(score int) (text, class string) {
	switch {
	case score <= 50:
		return "Good", "low"
	case score <= 100:
		return "Moderate", "medium"
	default:
		return "Poor/High", "high"
	}
}

// Annotate fills in a candidate's derived metric fields: AQI badge, CO2
// emission and emission tag. The candidate's geometry and base estimates are
// left untouched.
func Annotate(c *entities.RouteCandidate) {
	c.Aqi, c.AqiBadge = AqiBadge(c.AqiScore)
	c.CO2Emission = CO2Grams(c.Mode, c.LengthKm)
	c.EmissionTag = EmissionTagFor(c.Mode)
}
