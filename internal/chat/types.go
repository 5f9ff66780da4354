package chat

import (
	"time"

	"travel-assistant/internal/model"
)

// --- UseCase Inputs ---

type CreateSessionInput struct {
	// ShowReasoning overrides the configured default when set.
	ShowReasoning *bool
}

type SendMessageInput struct {
	SessionID string
	Message   string
	// CreateIfMissing opens the session on first use (chat-bound transports).
	CreateIfMissing bool
}

type AnalyzeInput struct {
	SessionID string
	Message   string
}

// --- UseCase Outputs ---

type CreateSessionOutput struct {
	SessionID     string
	ShowReasoning bool
	CreatedAt     time.Time
}

type SendMessageOutput struct {
	SessionID string
	Reply     string
	Category  model.Category
	Clarified bool
	Facts     []string
}

type HistoryOutput struct {
	SessionID string
	Turns     []model.Turn
}

type AnalyzeOutput struct {
	Analysis model.AnalysisResult
}
