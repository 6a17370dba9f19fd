package types

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// SourceArticle is a candidate source discovered by the search stage,
// not yet scraped.
type SourceArticle struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Summary string `json:"summary,omitempty"`
}

// SearchResults holds the ordered candidates found for one topic.
// An empty Articles slice is a valid, terminal result (no sources found).
type SearchResults struct {
	Articles []SourceArticle `json:"articles"`
}

// ScrapedArticle is the extracted content for a single source URL.
type ScrapedArticle struct {
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Author      string    `json:"author,omitempty"`
	PublishedAt time.Time `json:"published_at,omitempty"`
}

// BlogPost is the terminal artifact for one topic.
type BlogPost struct {
	Topic       string    `json:"topic"`
	Content     string    `json:"content"`
	Sources     int       `json:"sources"`
	GeneratedAt time.Time `json:"generated_at"`
}

// GenerateID creates a short stable ID from a URL.
func GenerateID(url string) string {
	hash := sha256.Sum256([]byte(url))
	return hex.EncodeToString(hash[:])[:16]
}

// Slug converts a topic to a URL-safe identifier: lowercased with
// whitespace collapsed to single dashes. The topic itself is used
// verbatim as a cache key; the slug is only for derived identifiers
// (S3 keys, session IDs).
func Slug(topic string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(topic)))
	return strings.Join(fields, "-")
}
