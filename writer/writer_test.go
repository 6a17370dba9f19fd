package writer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"blogbot/types"
)

type fakeStream struct {
	chunks []string
	pos    int
	err    error // returned after the chunks are exhausted, instead of io.EOF
	closed bool
}

func (f *fakeStream) Recv() (string, error) {
	if f.pos >= len(f.chunks) {
		if f.err != nil {
			return "", f.err
		}
		return "", io.EOF
	}
	chunk := f.chunks[f.pos]
	f.pos++
	return chunk, nil
}

func (f *fakeStream) Close() error {
	f.closed = true
	return nil
}

type fakeWriter struct {
	lastInput string
	stream    *fakeStream
	err       error
}

func (f *fakeWriter) Write(ctx context.Context, input string) (TextStream, error) {
	f.lastInput = input
	if f.err != nil {
		return nil, f.err
	}
	return f.stream, nil
}

func TestComposeRelaysAndBuffers(t *testing.T) {
	stream := &fakeStream{chunks: []string{"# Title\n", "", "Body ", "text."}}
	w := &fakeWriter{stream: stream}
	stage := NewStage(w)

	var relayed []string
	got, err := stage.Compose(context.Background(), "Test Topic",
		map[string]types.ScrapedArticle{
			"https://example.com/a": {URL: "https://example.com/a", Title: "A", Content: "body"},
		},
		func(chunk string) { relayed = append(relayed, chunk) })
	if err != nil {
		t.Fatalf("compose: %v", err)
	}

	if got != "# Title\nBody text." {
		t.Fatalf("buffered text mismatch: %q", got)
	}
	if strings.Join(relayed, "") != got {
		t.Fatalf("relayed chunks must reassemble to the final text, got %q", strings.Join(relayed, ""))
	}
	if !stream.closed {
		t.Fatal("stream must be closed after consumption")
	}
}

func TestComposeInputShape(t *testing.T) {
	w := &fakeWriter{stream: &fakeStream{}}
	stage := NewStage(w)

	articles := map[string]types.ScrapedArticle{
		"https://example.com/a": {URL: "https://example.com/a", Title: "A", Content: "body"},
	}
	if _, err := stage.Compose(context.Background(), "Test Topic", articles, nil); err != nil {
		t.Fatalf("compose: %v", err)
	}

	var input struct {
		Topic    string                 `json:"topic"`
		Articles []types.ScrapedArticle `json:"articles"`
	}
	if err := json.Unmarshal([]byte(w.lastInput), &input); err != nil {
		t.Fatalf("writer input is not valid JSON: %v", err)
	}
	if input.Topic != "Test Topic" {
		t.Fatalf("expected topic in writer input, got %q", input.Topic)
	}
	if len(input.Articles) != 1 || input.Articles[0].URL != "https://example.com/a" {
		t.Fatalf("expected article values in writer input, got %+v", input.Articles)
	}
}

func TestComposePropagatesWriterError(t *testing.T) {
	w := &fakeWriter{err: errors.New("model unavailable")}
	stage := NewStage(w)

	_, err := stage.Compose(context.Background(), "Test Topic", nil, nil)
	if err == nil {
		t.Fatal("writer errors must propagate")
	}
}

func TestComposePropagatesStreamError(t *testing.T) {
	stream := &fakeStream{chunks: []string{"partial"}, err: errors.New("connection reset")}
	w := &fakeWriter{stream: stream}
	stage := NewStage(w)

	_, err := stage.Compose(context.Background(), "Test Topic", nil, nil)
	if err == nil {
		t.Fatal("mid-stream errors must propagate")
	}
}
