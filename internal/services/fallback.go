package services

import (
	"time"

	"github.com/harshekka/smart-trip-planner/internal/domain/entities"
	"github.com/harshekka/smart-trip-planner/internal/rank"
	"github.com/harshekka/smart-trip-planner/pkg/utils"
)

// fallbackCandidates builds the canned candidate set shown when a search
// cannot produce real routes. The set spans the full mode spectrum so every
// preference still has something sensible to select. The three road paths
// are driven (the green one walked), so annotation reproduces the expected
// demo emissions: 624 g, 936 g and 0 g.
func fallbackCandidates() []entities.RouteCandidate {
	cands := []entities.RouteCandidate{
		{ID: 0, Mode: entities.ModeTaxi, Name: "Balanced Path", TimeSeconds: 1920, Cost: "₹150", LengthKm: 5.2, AqiScore: 65},
		{ID: 1, Mode: entities.ModeTaxi, Name: "Direct Path", TimeSeconds: 1680, Cost: "₹250", LengthKm: 7.8, AqiScore: 120},
		{ID: 2, Mode: entities.ModeWalk, Name: "Green Path", TimeSeconds: 2400, Cost: "₹80", LengthKm: 3.1, AqiScore: 30},
		{ID: 3, Mode: entities.ModeTrain, Name: "Train", TimeSeconds: 4800, Cost: "₹160", LengthKm: 82, AqiScore: 35},
		{ID: 4, Mode: entities.ModeFlight, Name: "Flight", TimeSeconds: 9000, Cost: "₹3,200", LengthKm: 63, AqiScore: 20},
		{ID: 5, Mode: entities.ModeMotorbike, Name: "Motorbike", TimeSeconds: 1500, Cost: "₹60", LengthKm: 7.8, AqiScore: 120},
		{ID: 6, Mode: entities.ModeEV, Name: "EV Car", TimeSeconds: 1920, Cost: "₹100", LengthKm: 5.2, AqiScore: 65},
	}
	for i := range cands {
		cands[i].TimeText = utils.FormatDuration(cands[i].TimeSeconds)
		rank.Annotate(&cands[i])
	}
	rank.Rank(cands)
	return cands
}

// FallbackResult wraps the canned candidates into a complete result set.
// The first candidate is pre-selected regardless of preference so the
// response is usable without any further provider calls.
func FallbackResult(start, destination, message string) *entities.SearchResult {
	return &entities.SearchResult{
		ID:           utils.GenerateID(),
		Start:        start,
		Destination:  destination,
		Candidates:   fallbackCandidates(),
		ActiveID:     0,
		Fallback:     true,
		ErrorMessage: message,
		CreatedAt:    time.Now(),
	}
}
