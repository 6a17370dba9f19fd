package store

import (
	"context"
	"errors"
)

// Stage names partition the cache per topic. For a fixed topic there is at
// most one entry per stage; Put overwrites (last write wins).
const (
	StageSearch = "search"
	StageScrape = "scrape"
	StagePost   = "post"
)

// ErrNotFound is returned by Get when no entry exists for (topic, stage).
// A missing key is a normal outcome, not a failure.
var ErrNotFound = errors.New("store: entry not found")

// Store is a durable topic-keyed mapping from stage name to cached payload.
// Payloads are opaque bytes; the stages own (de)serialization so that a
// corrupt entry can be recovered from as a cache miss rather than an abort.
type Store interface {
	Get(ctx context.Context, topic, stage string) ([]byte, error)
	Put(ctx context.Context, topic, stage string, payload []byte) error
}
