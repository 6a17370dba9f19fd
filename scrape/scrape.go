package scrape

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"blogbot/store"
	"blogbot/types"
)

// Scraper is the external content-extraction collaborator for a single URL.
type Scraper interface {
	Scrape(ctx context.Context, url string) (*types.ScrapedArticle, error)
}

// Stage converts search candidates into scraped articles, caching the whole
// per-topic set under the "scrape" stage.
type Stage struct {
	store   store.Store
	scraper Scraper
}

// NewStage creates a scrape stage.
func NewStage(s store.Store, scraper Scraper) *Stage {
	return &Stage{store: s, scraper: scraper}
}

// Scrape returns the scraped article set for the topic, keyed by URL.
//
// With useCache a topic-level cache hit short-circuits entirely: the cached
// set is returned as-is, even if the candidate list holds URLs the set does
// not. Otherwise candidates are scraped sequentially in order; URLs already
// in the set are skipped and single-URL failures are dropped from the
// result. The accumulated set is always persisted, even when empty.
func (s *Stage) Scrape(ctx context.Context, topic string, results *types.SearchResults, useCache bool) map[string]types.ScrapedArticle {
	scraped := make(map[string]types.ScrapedArticle)

	if useCache {
		if cached := s.fromCache(ctx, topic); cached != nil {
			log.Printf("Found %d scraped articles in cache for topic: %s", len(cached), topic)
			return cached
		}
	}

	for _, candidate := range results.Articles {
		if _, ok := scraped[candidate.URL]; ok {
			log.Printf("Skipping already scraped article: %s", candidate.URL)
			continue
		}

		article, err := s.scraper.Scrape(ctx, candidate.URL)
		if err != nil {
			log.Printf("Warning: failed to scrape %s: %v", candidate.URL, err)
			continue
		}
		if article == nil || article.Content == "" {
			log.Printf("Warning: no content extracted from %s", candidate.URL)
			continue
		}

		// Fall back to the search candidate's title when extraction
		// did not find one.
		if article.Title == "" {
			article.Title = candidate.Title
		}
		scraped[article.URL] = *article
		log.Printf("Scraped article: %s", article.URL)
	}

	s.toCache(ctx, topic, scraped)
	return scraped
}

func (s *Stage) fromCache(ctx context.Context, topic string) map[string]types.ScrapedArticle {
	payload, err := s.store.Get(ctx, topic, store.StageScrape)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		log.Printf("Warning: could not read scraped articles from cache: %v", err)
		return nil
	}

	var scraped map[string]types.ScrapedArticle
	if err := json.Unmarshal(payload, &scraped); err != nil {
		log.Printf("Warning: corrupt cached scraped articles for topic %q: %v", topic, err)
		return nil
	}
	return scraped
}

func (s *Stage) toCache(ctx context.Context, topic string, scraped map[string]types.ScrapedArticle) {
	payload, err := json.Marshal(scraped)
	if err != nil {
		log.Printf("Warning: could not serialize scraped articles for topic %q: %v", topic, err)
		return
	}
	if err := s.store.Put(ctx, topic, store.StageScrape, payload); err != nil {
		log.Printf("Warning: could not cache scraped articles for topic %q: %v", topic, err)
	}
}
