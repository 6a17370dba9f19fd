package search

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"blogbot/store"
	"blogbot/types"
)

// DefaultAttempts is the hard cap on collaborator calls per run.
const DefaultAttempts = 3

// Searcher is the external search collaborator. Implementations must return
// an error for malformed output; an empty result set is a legitimate answer,
// not an error.
type Searcher interface {
	Search(ctx context.Context, topic string) (*types.SearchResults, error)
}

// Stage finds candidate source articles for a topic, caching results per
// topic under the "search" stage.
type Stage struct {
	store    store.Store
	searcher Searcher
	attempts int
}

// NewStage creates a search stage. attempts <= 0 falls back to DefaultAttempts.
func NewStage(s store.Store, searcher Searcher, attempts int) *Stage {
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	return &Stage{store: s, searcher: searcher, attempts: attempts}
}

// Search returns candidates for the topic. With useCache it returns a valid
// cached result immediately. Otherwise it calls the collaborator up to the
// attempt cap, caches the first success and returns it. When every
// attempt fails it returns nil; the orchestrator treats nil the same as an
// empty result set. A corrupt cache entry is logged and treated as a miss.
func (s *Stage) Search(ctx context.Context, topic string, useCache bool) *types.SearchResults {
	if useCache {
		if cached := s.fromCache(ctx, topic); cached != nil {
			log.Printf("Found %d articles in cache for topic: %s", len(cached.Articles), topic)
			return cached
		}
	}

	for attempt := 1; attempt <= s.attempts; attempt++ {
		results, err := s.searcher.Search(ctx, topic)
		if err != nil {
			log.Printf("Warning: search attempt %d/%d failed for topic %q: %v", attempt, s.attempts, topic, err)
			continue
		}
		if results == nil {
			log.Printf("Warning: search attempt %d/%d returned no response for topic %q", attempt, s.attempts, topic)
			continue
		}

		log.Printf("Found %d articles on attempt %d for topic: %s", len(results.Articles), attempt, topic)
		s.toCache(ctx, topic, results)
		return results
	}

	log.Printf("Error: failed to get search results after %d attempts for topic: %s", s.attempts, topic)
	return nil
}

func (s *Stage) fromCache(ctx context.Context, topic string) *types.SearchResults {
	payload, err := s.store.Get(ctx, topic, store.StageSearch)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		log.Printf("Warning: could not read search results from cache: %v", err)
		return nil
	}

	var results types.SearchResults
	if err := json.Unmarshal(payload, &results); err != nil {
		log.Printf("Warning: corrupt cached search results for topic %q: %v", topic, err)
		return nil
	}
	return &results
}

func (s *Stage) toCache(ctx context.Context, topic string, results *types.SearchResults) {
	payload, err := json.Marshal(results)
	if err != nil {
		log.Printf("Warning: could not serialize search results for topic %q: %v", topic, err)
		return
	}
	if err := s.store.Put(ctx, topic, store.StageSearch, payload); err != nil {
		log.Printf("Warning: could not cache search results for topic %q: %v", topic, err)
	}
}
