package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"blogbot/demo/client"
)

// State represents the demo state machine
type State string

const (
	StateConnecting State = "connecting"
	StateStreaming  State = "streaming"
	StateComplete   State = "complete"
	StateError      State = "error"
)

// Model represents the TUI client state (thin client)
type Model struct {
	Client *client.Client
	Topic  string
	Fresh  bool // bypass all caches for this run

	State   State
	Content string
	Err     error

	events <-chan client.StreamEvent
	width  int
}

// NewModel creates a new TUI model
func NewModel(apiURL, topic string, fresh bool) Model {
	return Model{
		Client: client.NewClient(apiURL),
		Topic:  topic,
		Fresh:  fresh,
		State:  StateConnecting,
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return startGeneration(m.Client, m.Topic, m.Fresh)
}

func (m Model) getStateText() string {
	switch m.State {
	case StateConnecting:
		return StatusStyle.Render("Contacting blogbot server...")
	case StateStreaming:
		return StatusStyle.Render("Writing blog post...")
	case StateComplete:
		return HighlightStyle.Render("COMPLETE")
	case StateError:
		errMsg := "Unknown error"
		if m.Err != nil {
			errMsg = m.Err.Error()
		}
		return ErrorStyle.Render("Error: " + errMsg)
	default:
		return ""
	}
}
