package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"blogbot/types"
)

func TestMemoryStoreMissingKey(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get(context.Background(), "Test Topic", StageSearch)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing key, got %v", err)
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	original := types.SearchResults{
		Articles: []types.SourceArticle{
			{URL: "https://example.com/a", Title: "A", Summary: "first"},
			{URL: "https://example.com/b", Title: "B", Summary: "second"},
		},
	}

	payload, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := s.Put(ctx, "Test Topic", StageSearch, payload); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := s.Get(ctx, "Test Topic", StageSearch)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	var decoded types.SearchResults
	if err := json.Unmarshal(got, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded.Articles) != 2 {
		t.Fatalf("expected 2 articles after round trip, got %d", len(decoded.Articles))
	}
	if decoded.Articles[0].URL != original.Articles[0].URL ||
		decoded.Articles[1].Summary != original.Articles[1].Summary {
		t.Fatalf("round trip mismatch: %+v", decoded)
	}
}

func TestMemoryStoreLastWriteWins(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Put(ctx, "Topic", StagePost, []byte("first")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Put(ctx, "Topic", StagePost, []byte("second")); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := s.Get(ctx, "Topic", StagePost)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "second" {
		t.Fatalf("expected last write to win, got %q", got)
	}
	if s.Len() != 1 {
		t.Fatalf("expected a single entry per (topic, stage), got %d", s.Len())
	}
}

func TestMemoryStoreKeysAreScoped(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_ = s.Put(ctx, "Topic", StageSearch, []byte("search"))
	_ = s.Put(ctx, "Topic", StageScrape, []byte("scrape"))
	_ = s.Put(ctx, "Other Topic", StageSearch, []byte("other"))

	got, err := s.Get(ctx, "Topic", StageSearch)
	if err != nil || string(got) != "search" {
		t.Fatalf("stage scoping broken: %q, %v", got, err)
	}
	got, err = s.Get(ctx, "Other Topic", StageSearch)
	if err != nil || string(got) != "other" {
		t.Fatalf("topic scoping broken: %q, %v", got, err)
	}
}
