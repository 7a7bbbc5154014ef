package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/harshekka/smart-trip-planner/internal/domain/entities"
	"github.com/harshekka/smart-trip-planner/internal/rank"
	"github.com/harshekka/smart-trip-planner/internal/repository"
	"github.com/harshekka/smart-trip-planner/pkg/utils"
)

// ErrNoRoutes means every routing profile failed or was filtered out, so no
// real candidate could be produced.
var ErrNoRoutes = errors.New("no valid routes could be generated for any transportation mode between these points")

// SearchRequest is one trip-planning invocation.
type SearchRequest struct {
	Start       string
	Destination string
	Preference  entities.Preference
}

// SearchService orchestrates a full trip search: geocode both endpoints,
// build the candidate set, annotate and rank it, then publish the result.
// A search never errors out toward the caller; any fatal failure is turned
// into a fallback result set carrying the failure message.
type SearchService struct {
	geocoder   *GeocodeService
	candidates *CandidateService
	store      repository.ResultStore
}

func NewSearchService(geocoder *GeocodeService, candidates *CandidateService, store repository.ResultStore) *SearchService {
	return &SearchService{
		geocoder:   geocoder,
		candidates: candidates,
		store:      store,
	}
}

// Search runs the pipeline for req and returns the result set it produced.
// The generation is claimed before any network work so that a search started
// later always supersedes this one, even if this one finishes first.
func (s *SearchService) Search(ctx context.Context, req SearchRequest) *entities.SearchResult {
	gen := s.store.NextGeneration()

	result := s.run(ctx, req)
	if !s.store.Apply(gen, result) {
		log.Printf("[SEARCH] Discarding stale result for %q -> %q (generation %d superseded)",
			req.Start, req.Destination, gen)
	}
	return result
}

func (s *SearchService) run(ctx context.Context, req SearchRequest) *entities.SearchResult {
	log.Printf("[SEARCH] Planning %q -> %q (preference %s)", req.Start, req.Destination, req.Preference)

	origin, dest, err := s.geocodePair(ctx, req.Start, req.Destination)
	if err != nil {
		log.Printf("[SEARCH] Geocoding failed: %v", err)
		return FallbackResult(req.Start, req.Destination, err.Error())
	}

	cands := s.candidates.Build(ctx, origin, dest)
	if len(cands) == 0 {
		log.Printf("[SEARCH] %v", ErrNoRoutes)
		return FallbackResult(req.Start, req.Destination, ErrNoRoutes.Error())
	}

	for i := range cands {
		rank.Annotate(&cands[i])
	}
	rank.Rank(cands)

	return &entities.SearchResult{
		ID:          utils.GenerateID(),
		Start:       req.Start,
		Destination: req.Destination,
		Origin:      origin,
		Dest:        dest,
		Candidates:  cands,
		ActiveID:    rank.SelectActive(cands, req.Preference),
		CreatedAt:   time.Now(),
	}
}

// geocodePair resolves both endpoints concurrently. Resolution is
// all-or-nothing: either endpoint failing fails the pair, with a message
// naming the address part that could not be found.
func (s *SearchService) geocodePair(ctx context.Context, start, destination string) (entities.Coordinate, entities.Coordinate, error) {
	var (
		wg                sync.WaitGroup
		origin, dest      entities.Coordinate
		startErr, destErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		origin, startErr = s.geocoder.Resolve(ctx, start)
	}()
	go func() {
		defer wg.Done()
		dest, destErr = s.geocoder.Resolve(ctx, destination)
	}()
	wg.Wait()

	if startErr != nil {
		return entities.Coordinate{}, entities.Coordinate{}, fmt.Errorf(
			"Could not find starting location: %q. Try a well-known landmark or area name.",
			UnresolvedToken(start))
	}
	if destErr != nil {
		return entities.Coordinate{}, entities.Coordinate{}, fmt.Errorf(
			"Could not find destination: %q. Try a well-known landmark or area name.",
			UnresolvedToken(destination))
	}
	return origin, dest, nil
}
