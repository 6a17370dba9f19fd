package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"blogbot/demo/client"
)

// startGeneration opens the streaming request.
func startGeneration(c *client.Client, topic string, fresh bool) tea.Cmd {
	return func() tea.Msg {
		events, err := c.Generate(context.Background(), client.GenerateRequest{
			Topic:          topic,
			UseSearchCache: !fresh,
			UseScrapeCache: !fresh,
			UseCachedPost:  !fresh,
		})
		if err != nil {
			return StreamStartedMsg{Err: err}
		}
		return streamOpenedMsg{events: events}
	}
}

// streamOpenedMsg hands the live channel to the model.
type streamOpenedMsg struct {
	events <-chan client.StreamEvent
}

// waitForChunk blocks on the next stream event.
func waitForChunk(events <-chan client.StreamEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return StreamDoneMsg{}
		}
		if ev.Err != nil {
			return StreamErrorMsg{Err: ev.Err}
		}
		return ChunkMsg{Chunk: ev.Chunk}
	}
}
