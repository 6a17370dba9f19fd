package workflow

import (
	"context"
	"errors"
	"fmt"
	"log"

	"blogbot/scrape"
	"blogbot/search"
	"blogbot/store"
	"blogbot/writer"
)

// Request is one blog-generation run. The three cache flags gate the
// read side of each stage independently; writes always happen.
type Request struct {
	Topic          string `json:"topic"`
	UseSearchCache bool   `json:"use_search_cache"`
	UseScrapeCache bool   `json:"use_scrape_cache"`
	UseCachedPost  bool   `json:"use_cached_post"`
}

// Result is the terminal outcome of a run.
type Result struct {
	Content   string `json:"content"`
	FromCache bool   `json:"from_cache"`
	NotFound  bool   `json:"not_found"`
	Sources   int    `json:"sources"`
}

// Archiver persists a finished post outside the stage store. Archive
// failures are logged, never fatal.
type Archiver interface {
	Archive(ctx context.Context, topic, content string) error
}

// NotFoundMessage is the fixed user-facing text for a topic with no sources.
func NotFoundMessage(topic string) string {
	return fmt.Sprintf("Sorry, could not find any articles on the topic: %s", topic)
}

// Generator sequences search, scrape and write for one topic. It is the only
// component with cross-stage knowledge; each stage is independently
// restartable through its cache entry.
type Generator struct {
	store    store.Store
	search   *search.Stage
	scrape   *scrape.Stage
	write    *writer.Stage
	archiver Archiver
}

// NewGenerator wires the stages over a shared store.
func NewGenerator(s store.Store, searchStage *search.Stage, scrapeStage *scrape.Stage, writeStage *writer.Stage) *Generator {
	return &Generator{store: s, search: searchStage, scrape: scrapeStage, write: writeStage}
}

// WithArchiver attaches an optional post archiver.
func (g *Generator) WithArchiver(a Archiver) *Generator {
	g.archiver = a
	return g
}

// Generate runs the workflow for one topic. Chunks of the post body are
// relayed to onChunk as they become available; a cached post or the
// not-found message arrives as a single chunk. The returned Result carries
// the full text.
//
// Search and scrape failures never abort the run; only writer failures and
// store write failures for the final post do.
func (g *Generator) Generate(ctx context.Context, req Request, onChunk func(string)) (*Result, error) {
	log.Printf("Generating a blog post on: %s", req.Topic)

	emit := onChunk
	if emit == nil {
		emit = func(string) {}
	}

	if req.UseCachedPost {
		if cached, ok := g.cachedPost(ctx, req.Topic); ok {
			log.Printf("Serving cached blog post for topic: %s", req.Topic)
			emit(cached)
			return &Result{Content: cached, FromCache: true}, nil
		}
	}

	results := g.search.Search(ctx, req.Topic, req.UseSearchCache)
	if results == nil || len(results.Articles) == 0 {
		msg := NotFoundMessage(req.Topic)
		log.Printf("No articles found for topic: %s", req.Topic)
		emit(msg)
		return &Result{Content: msg, NotFound: true}, nil
	}

	articles := g.scrape.Scrape(ctx, req.Topic, results, req.UseScrapeCache)

	content, err := g.write.Compose(ctx, req.Topic, articles, onChunk)
	if err != nil {
		return nil, err
	}

	// Write-through regardless of UseCachedPost; only the read side is gated.
	if err := g.store.Put(ctx, req.Topic, store.StagePost, []byte(content)); err != nil {
		return nil, fmt.Errorf("failed to cache blog post for topic %q: %w", req.Topic, err)
	}
	log.Printf("Saved blog post for topic: %s", req.Topic)

	if g.archiver != nil {
		if err := g.archiver.Archive(ctx, req.Topic, content); err != nil {
			log.Printf("Warning: failed to archive blog post for topic %q: %v", req.Topic, err)
		}
	}

	return &Result{Content: content, Sources: len(articles)}, nil
}

// CachedPost returns the stored post for a topic, if any.
func (g *Generator) CachedPost(ctx context.Context, topic string) (string, bool) {
	return g.cachedPost(ctx, topic)
}

func (g *Generator) cachedPost(ctx context.Context, topic string) (string, bool) {
	payload, err := g.store.Get(ctx, topic, store.StagePost)
	if errors.Is(err, store.ErrNotFound) {
		return "", false
	}
	if err != nil {
		log.Printf("Warning: could not read cached blog post: %v", err)
		return "", false
	}
	return string(payload), true
}
