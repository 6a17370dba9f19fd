package tui

import (
	"strings"
)

// maxPreviewLines bounds how much of the streamed post is shown while writing.
const maxPreviewLines = 24

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	// Title
	b.WriteString(TitleStyle.Render("blogbot demo"))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("Topic: " + m.Topic))
	b.WriteString("\n\n")

	// Current state
	b.WriteString(m.getStateText())
	b.WriteString("\n\n")

	// Streamed content
	if m.Content != "" {
		content := m.Content
		if m.State == StateStreaming {
			content = tailLines(content, maxPreviewLines)
		}
		b.WriteString(BoxStyle.Render(content))
		b.WriteString("\n\n")
	}

	// Help text
	if m.State == StateComplete || m.State == StateError {
		b.WriteString(InfoStyle.Render("Press 'q' or Ctrl+C to exit"))
	} else {
		b.WriteString(InfoStyle.Render("Press 'q' or Ctrl+C to quit"))
	}

	return b.String()
}

func tailLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[len(lines)-n:], "\n")
}
