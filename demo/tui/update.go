package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case StreamStartedMsg:
		m.State = StateError
		m.Err = msg.Err
		return m, nil

	case streamOpenedMsg:
		m.State = StateStreaming
		m.events = msg.events
		return m, waitForChunk(m.events)

	case ChunkMsg:
		m.Content += msg.Chunk
		return m, waitForChunk(m.events)

	case StreamDoneMsg:
		m.State = StateComplete
		return m, nil

	case StreamErrorMsg:
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}

	return m, nil
}
