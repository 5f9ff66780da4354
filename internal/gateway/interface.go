package gateway

import (
	"context"

	"travel-assistant/internal/model"
	"travel-assistant/pkg/llmprovider"
)

// Gateway is the only path from the assistant to the chat model.
// Neither method returns an error: failures come back as apology text or a JSONResult error.
type Gateway interface {
	Complete(ctx context.Context, system, user string, history []model.Turn, maxTokens int) string
	CompleteJSON(ctx context.Context, system, user string) JSONResult
}

// Generator produces a single chat completion. *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}
