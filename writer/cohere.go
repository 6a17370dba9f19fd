package writer

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
	"github.com/cohere-ai/cohere-go/v2/core"
)

const defaultCohereModel = "command-r-08-2024"

// blogWriterPreamble frames the model as a blog author and pins the layout
// of the generated post.
const blogWriterPreamble = `You are BlogMaster-X, an elite content creator combining journalistic
excellence with digital marketing expertise.

You will receive a JSON payload with a "topic" and a list of researched
"articles" (url, title, content). Write an engaging, well-structured blog
post on the topic grounded in those articles.

Guidelines:
1. Craft an attention-grabbing headline and a compelling introduction.
2. Structure the body with relevant subheadings for digital consumption.
3. Incorporate facts, quotes and statistics from the articles naturally.
4. Maintain factual accuracy and cite sources properly.

Output markdown in this shape:

# {Headline}

## Introduction
{Engaging hook and context}

## {Section headings as appropriate}
{Key insights, quotes, examples}

## Key Takeaways
- {Shareable insights}

## Sources
{Attributed source links}`

// CohereWriter streams blog posts from the Cohere chat API.
type CohereWriter struct {
	client *cohereclient.Client
	model  string
}

// NewCohereWriter creates a writer for the given API key. model may be empty
// to use the default.
func NewCohereWriter(apiKey, model string) *CohereWriter {
	if model == "" {
		model = defaultCohereModel
	}

	// Force HTTP/1.1 to avoid HTTP/2 protocol errors against the Cohere API.
	httpClient := &http.Client{
		Timeout: 5 * time.Minute,
		Transport: &http.Transport{
			TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
			ForceAttemptHTTP2: false,
		},
	}
	client := cohereclient.NewClient(
		cohereclient.WithToken(apiKey),
		cohereclient.WithHTTPClient(httpClient),
	)
	return &CohereWriter{client: client, model: model}
}

// Write starts a streaming chat completion for the serialized writer input.
func (w *CohereWriter) Write(ctx context.Context, input string) (TextStream, error) {
	model := w.model
	preamble := blogWriterPreamble

	stream, err := w.client.ChatStream(ctx, &cohere.ChatStreamRequest{
		Message:  input,
		Model:    &model,
		Preamble: &preamble,
	})
	if err != nil {
		return nil, err
	}
	return &cohereStream{stream: stream}, nil
}

type cohereStream struct {
	stream *core.Stream[cohere.StreamedChatResponse]
}

// Recv forwards text-generation events and skips everything else (stream
// start, citations, tool events). io.EOF marks the end of the stream.
func (c *cohereStream) Recv() (string, error) {
	for {
		resp, err := c.stream.Recv()
		if err == io.EOF {
			return "", io.EOF
		}
		if err != nil {
			return "", err
		}
		if resp.TextGeneration != nil {
			return resp.TextGeneration.Text, nil
		}
	}
}

func (c *cohereStream) Close() error {
	return c.stream.Close()
}
