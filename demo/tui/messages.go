package tui

// Messages for the tea program (stream-based)

// StreamStartedMsg is sent when the generation stream fails to open
type StreamStartedMsg struct {
	Err error
}

// ChunkMsg carries one chunk of generated text
type ChunkMsg struct {
	Chunk string
}

// StreamDoneMsg is sent when the stream ends
type StreamDoneMsg struct{}

// StreamErrorMsg is sent when the stream fails mid-flight
type StreamErrorMsg struct {
	Err error
}
