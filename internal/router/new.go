package router

import (
	"context"

	"travel-assistant/internal/gateway"
	"travel-assistant/internal/model"
	"travel-assistant/pkg/log"
)

// Router is the interface for question analysis
type Router interface {
	Analyze(ctx context.Context, message string, history []model.Turn) model.AnalysisResult
}

// SemanticRouter classifies travel questions with a single LLM call
type SemanticRouter struct {
	llm gateway.Gateway
	l   log.Logger
}

// Ensure SemanticRouter implements Router interface
var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter
func New(llm gateway.Gateway, l log.Logger) *SemanticRouter {
	return &SemanticRouter{
		llm: llm,
		l:   l,
	}
}
