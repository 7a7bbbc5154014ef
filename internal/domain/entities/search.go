package entities

import (
	"fmt"
	"time"
)

// Preference is the user's stated optimization axis for the initial route
// selection. It drives which candidate starts out active; it does not change
// the candidate set or its tags.
type Preference string

const (
	PreferenceBalanced Preference = "balanced"
	PreferenceSpeed    Preference = "speed"
	PreferenceEco      Preference = "eco"
	PreferenceCost     Preference = "cost"
	PreferenceHealth   Preference = "health"
)

// ParsePreference validates a preference string. An empty value defaults to
// balanced.
func ParsePreference(s string) (Preference, error) {
	switch Preference(s) {
	case "":
		return PreferenceBalanced, nil
	case PreferenceBalanced, PreferenceSpeed, PreferenceEco, PreferenceCost, PreferenceHealth:
		return Preference(s), nil
	}
	return "", fmt.Errorf("unknown route preference %q", s)
}

// SearchResult is the full candidate set produced by one search. It is
// created atomically per search invocation and replaces any prior result set
// wholesale; there are no partial updates.
type SearchResult struct {
	ID           string           `json:"search_id"`
	Start        string           `json:"start"`
	Destination  string           `json:"destination"`
	Origin       Coordinate       `json:"origin"`
	Dest         Coordinate       `json:"dest"`
	Candidates   []RouteCandidate `json:"candidates"`
	ActiveID     int              `json:"active_id"`
	Fallback     bool             `json:"fallback"`
	ErrorMessage string           `json:"error,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}
