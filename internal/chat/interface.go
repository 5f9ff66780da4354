package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Sessions
	CreateSession(ctx context.Context, input CreateSessionInput) (CreateSessionOutput, error)
	EndSession(ctx context.Context, sessionID string) error

	// Conversation
	SendMessage(ctx context.Context, input SendMessageInput) (SendMessageOutput, error)
	History(ctx context.Context, sessionID string) (HistoryOutput, error)
	ClearHistory(ctx context.Context, sessionID string) error

	// Analyze runs only the question analyzer, without answering or touching history.
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)
}
