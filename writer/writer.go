package writer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"blogbot/types"
)

// TextStream yields incremental content chunks from the write collaborator.
// Recv returns io.EOF after the final chunk.
type TextStream interface {
	Recv() (string, error)
	Close() error
}

// Writer is the external writing collaborator. It receives the serialized
// {topic, articles} payload and streams back the post body.
type Writer interface {
	Write(ctx context.Context, input string) (TextStream, error)
}

// writerInput is the payload handed to the collaborator: the topic plus the
// scraped article values (cache keys dropped).
type writerInput struct {
	Topic    string                 `json:"topic"`
	Articles []types.ScrapedArticle `json:"articles"`
}

// Stage turns scraped articles into the final post body.
type Stage struct {
	writer Writer
}

// NewStage creates a write stage.
func NewStage(w Writer) *Stage {
	return &Stage{writer: w}
}

// Compose marshals the topic and articles, runs the collaborator and relays
// every chunk to onChunk unmodified while buffering the full text. The
// buffered text is returned for caching. Collaborator failures propagate;
// there is no retry and no fallback content.
func (s *Stage) Compose(ctx context.Context, topic string, articles map[string]types.ScrapedArticle, onChunk func(string)) (string, error) {
	input := writerInput{Topic: topic, Articles: make([]types.ScrapedArticle, 0, len(articles))}
	for _, a := range articles {
		input.Articles = append(input.Articles, a)
	}

	payload, err := json.MarshalIndent(input, "", "    ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize writer input: %w", err)
	}

	stream, err := s.writer.Write(ctx, string(payload))
	if err != nil {
		return "", fmt.Errorf("writer failed for topic %q: %w", topic, err)
	}
	defer stream.Close()

	var buf strings.Builder
	for {
		chunk, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("writer stream failed for topic %q: %w", topic, err)
		}
		if chunk == "" {
			continue
		}
		buf.WriteString(chunk)
		if onChunk != nil {
			onChunk(chunk)
		}
	}

	log.Printf("Writer produced %d characters for topic: %s", buf.Len(), topic)
	return buf.String(), nil
}
