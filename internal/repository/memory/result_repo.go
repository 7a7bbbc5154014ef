package memory

import (
	"sync"

	"github.com/harshekka/smart-trip-planner/internal/domain/entities"
)

// ResultRepository is the in-memory implementation of repository.ResultStore.
// It keeps the single active result set plus the generation bookkeeping that
// discards late-arriving results from superseded searches.
type ResultRepository struct {
	mu         sync.Mutex
	nextGen    uint64
	appliedGen uint64
	active     *entities.SearchResult
}

func NewResultRepository() *ResultRepository {
	return &ResultRepository{}
}

// NextGeneration claims the next generation number for a starting search.
func (r *ResultRepository) NextGeneration() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextGen++
	return r.nextGen
}

// Apply swaps in a freshly built result set, unless a result from a newer
// search has already been applied.
func (r *ResultRepository) Apply(gen uint64, result *entities.SearchResult) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gen <= r.appliedGen {
		return false
	}
	r.appliedGen = gen
	r.active = result
	return true
}

// Active returns the currently applied result set.
func (r *ResultRepository) Active() (*entities.SearchResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active == nil {
		return nil, false
	}
	return r.active, true
}
