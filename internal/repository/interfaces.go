// Package repository defines storage contracts for the planner's state.
// The only stored state is the active search result set; past searches are
// never persisted.
package repository

import "github.com/harshekka/smart-trip-planner/internal/domain/entities"

// ResultStore holds the single active search result set and guards it
// against stale writes.
//
// A search that starts later must win even if it finishes earlier: each
// search claims a generation via NextGeneration before doing any network
// work, and Apply rejects results whose generation has been superseded.
type ResultStore interface {
	// NextGeneration claims a monotonically increasing generation number
	// for a new search.
	NextGeneration() uint64

	// Apply installs a result set produced under gen. It returns false,
	// leaving the active set untouched, when a newer generation has
	// already been applied.
	Apply(gen uint64, result *entities.SearchResult) bool

	// Active returns the current result set, or ok=false when no search
	// has completed yet.
	Active() (result *entities.SearchResult, ok bool)
}
