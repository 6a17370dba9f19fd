package search

import (
	"context"
	"fmt"
	"net/url"

	"blogbot/types"

	"github.com/mmcdole/gofeed"
)

const googleNewsSearchURL = "https://news.google.com/rss/search?q=%s&hl=en-US&gl=US&ceid=US:en"

// GoogleNewsSearcher discovers candidate articles through the Google News
// RSS search endpoint.
type GoogleNewsSearcher struct {
	parser     *gofeed.Parser
	maxResults int
}

// NewGoogleNewsSearcher creates a searcher capped at maxResults candidates
// per query.
func NewGoogleNewsSearcher(maxResults int) *GoogleNewsSearcher {
	if maxResults <= 0 {
		maxResults = 7
	}
	return &GoogleNewsSearcher{
		parser:     gofeed.NewParser(),
		maxResults: maxResults,
	}
}

// Search queries the feed for the topic. A feed that parses but carries no
// items is a valid empty result; a fetch or parse failure is an error.
func (g *GoogleNewsSearcher) Search(ctx context.Context, topic string) (*types.SearchResults, error) {
	feedURL := fmt.Sprintf(googleNewsSearchURL, url.QueryEscape(topic))

	feed, err := g.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch search feed: %w", err)
	}

	count := min(len(feed.Items), g.maxResults)
	results := &types.SearchResults{Articles: make([]types.SourceArticle, 0, count)}

	for i := 0; i < count; i++ {
		item := feed.Items[i]
		if item.Link == "" {
			continue
		}
		results.Articles = append(results.Articles, types.SourceArticle{
			URL:     item.Link,
			Title:   item.Title,
			Summary: item.Description,
		})
	}

	return results, nil
}
