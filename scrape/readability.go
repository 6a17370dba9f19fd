package scrape

import (
	"context"
	"fmt"
	"time"

	"blogbot/types"

	readability "github.com/go-shiori/go-readability"
)

const extractorTimeout = 30 * time.Second

// ReadabilityScraper extracts article content with go-readability.
type ReadabilityScraper struct {
	timeout time.Duration
}

// NewReadabilityScraper creates a scraper with the default per-URL timeout.
func NewReadabilityScraper() *ReadabilityScraper {
	return &ReadabilityScraper{timeout: extractorTimeout}
}

// Scrape fetches and extracts a single article. Pages that yield no text
// content are reported as errors so the stage can drop them.
func (r *ReadabilityScraper) Scrape(ctx context.Context, url string) (*types.ScrapedArticle, error) {
	if url == "" {
		return nil, fmt.Errorf("article URL is empty")
	}

	extracted, err := readability.FromURL(url, r.timeout)
	if err != nil {
		return nil, fmt.Errorf("readability extraction failed: %w", err)
	}
	if extracted.TextContent == "" {
		return nil, fmt.Errorf("no text content extracted from %s", url)
	}

	article := &types.ScrapedArticle{
		URL:     url,
		Title:   extracted.Title,
		Content: extracted.TextContent,
		Author:  extracted.Byline,
	}
	if extracted.PublishedTime != nil {
		article.PublishedAt = *extracted.PublishedTime
	}
	return article, nil
}
