package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"blogbot/scrape"
	"blogbot/search"
	"blogbot/store"
	"blogbot/types"
	"blogbot/workflow"
	"blogbot/writer"
)

type stubSearcher struct{ results *types.SearchResults }

func (s *stubSearcher) Search(ctx context.Context, topic string) (*types.SearchResults, error) {
	return s.results, nil
}

type stubScraper struct{}

func (stubScraper) Scrape(ctx context.Context, url string) (*types.ScrapedArticle, error) {
	return &types.ScrapedArticle{URL: url, Title: "T", Content: "body"}, nil
}

type stubStream struct {
	chunks []string
	pos    int
}

func (s *stubStream) Recv() (string, error) {
	if s.pos >= len(s.chunks) {
		return "", io.EOF
	}
	c := s.chunks[s.pos]
	s.pos++
	return c, nil
}

func (s *stubStream) Close() error { return nil }

type stubWriter struct{ chunks []string }

func (w *stubWriter) Write(ctx context.Context, input string) (writer.TextStream, error) {
	return &stubStream{chunks: w.chunks}, nil
}

func newTestRouter(mem *store.MemoryStore, results *types.SearchResults, chunks []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	gen := workflow.NewGenerator(mem,
		search.NewStage(mem, &stubSearcher{results: results}, 3),
		scrape.NewStage(mem, stubScraper{}),
		writer.NewStage(&stubWriter{chunks: chunks}))
	return NewRouter(gen)
}

func TestGenerateStreamsPost(t *testing.T) {
	mem := store.NewMemoryStore()
	router := newTestRouter(mem, &types.SearchResults{Articles: []types.SourceArticle{
		{URL: "https://example.com/a", Title: "A"},
	}}, []string{"hello ", "world"})

	req := httptest.NewRequest(http.MethodPost, "/api/blog/generate",
		strings.NewReader(`{"topic":"Test Topic"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != "hello world" {
		t.Fatalf("expected streamed body, got %q", rec.Body.String())
	}
}

func TestGenerateNotFoundTopicStreamsMessage(t *testing.T) {
	mem := store.NewMemoryStore()
	router := newTestRouter(mem, &types.SearchResults{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/blog/generate",
		strings.NewReader(`{"topic":"Empty Topic"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	want := "Sorry, could not find any articles on the topic: Empty Topic"
	if rec.Body.String() != want {
		t.Fatalf("expected %q, got %q", want, rec.Body.String())
	}
}

func TestGenerateRejectsMissingTopic(t *testing.T) {
	mem := store.NewMemoryStore()
	router := newTestRouter(mem, &types.SearchResults{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/blog/generate", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing topic, got %d", rec.Code)
	}
}

func TestGetPost(t *testing.T) {
	mem := store.NewMemoryStore()
	router := newTestRouter(mem, &types.SearchResults{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/blog/post?topic=Missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing post, got %d", rec.Code)
	}

	_ = mem.Put(context.Background(), "Known", store.StagePost, []byte("cached"))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/blog/post?topic=Known", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for cached post, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "cached") {
		t.Fatalf("expected cached content in response, got %q", rec.Body.String())
	}
}
