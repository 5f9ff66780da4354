package gateway

import (
	"context"
	"fmt"
	"strings"

	"travel-assistant/internal/model"
	"travel-assistant/pkg/llmprovider"
	"travel-assistant/pkg/metrics"
)

// Complete sends the system prompt, the last HistoryWindow turns and the user prompt.
// An empty user prompt is not sent as its own turn.
func (g *gateway) Complete(ctx context.Context, system, user string, history []model.Turn, maxTokens int) string {
	if maxTokens <= 0 {
		maxTokens = g.cfg.ToolMaxTokens
	}

	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  llmprovider.RoleSystem,
			Parts: []llmprovider.Part{{Text: system}},
		},
		Messages:    g.buildMessages(history, user),
		Temperature: g.cfg.Temperature,
		MaxTokens:   maxTokens,
	}

	if err := g.waitTurn(ctx); err != nil {
		return g.apologize(ctx, err)
	}

	resp, err := g.llm.GenerateContent(ctx, req)
	g.finishTurn()
	if err != nil {
		return g.apologize(ctx, err)
	}

	g.metrics.ObserveLLMCall(metrics.LLMOK)
	return strings.TrimSpace(resp.Content.Text())
}

func (g *gateway) buildMessages(history []model.Turn, user string) []llmprovider.Message {
	if w := g.cfg.HistoryWindow; w > 0 && len(history) > w {
		history = history[len(history)-w:]
	}

	msgs := make([]llmprovider.Message, 0, len(history)+1)
	for _, t := range history {
		msgs = append(msgs, llmprovider.NewTextMessage(string(t.Role), t.Content))
	}
	if user != "" {
		msgs = append(msgs, llmprovider.NewTextMessage(llmprovider.RoleUser, user))
	}
	return msgs
}

func (g *gateway) apologize(ctx context.Context, err error) string {
	g.metrics.ObserveLLMCall(metrics.LLMApology)
	if llmprovider.IsRateLimited(err) {
		g.l.Warnf(ctx, "%s: rate limited: %v", LogPrefixComplete, err)
		return RateLimitApology
	}
	g.l.Errorf(ctx, "%s: %v", LogPrefixComplete, err)
	return fmt.Sprintf("%s%v", ErrorApologyPrefix, err)
}

// IsApology reports whether text is one of the apology strings returned by Complete.
func IsApology(text string) bool {
	return strings.HasPrefix(text, rateLimitApologyMarker) || strings.HasPrefix(text, errorApologyMarker)
}
