package assistant

import "travel-assistant/internal/model"

// Config controls generation and history for one assistant.
type Config struct {
	MaxHistory          int
	ShowReasoning       bool
	GenerationMaxTokens int
	DebugMaxTokens      int
}

// Reply is the outcome of one user turn.
type Reply struct {
	Text      string
	Analysis  model.AnalysisResult
	Facts     []string
	Clarified bool
}
