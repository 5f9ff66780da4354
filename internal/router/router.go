package router

import (
	"context"
	"fmt"
	"strings"

	"travel-assistant/internal/model"
	"travel-assistant/internal/prompt"
)

// Analyze classifies message in the light of recent history. It always returns
// a well-formed result; model and transport failures produce a GENERAL fallback.
func (r *SemanticRouter) Analyze(ctx context.Context, message string, history []model.Turn) model.AnalysisResult {
	convContext := buildContext(history)
	if convContext != "" {
		r.l.Debugf(ctx, "%s: using conversation context: %s", LogPrefixAnalyze, convContext)
	}

	res := r.llm.CompleteJSON(ctx, prompt.AnalysisSystem, prompt.BuildAnalysis(convContext, message))

	if res.RateLimited() {
		r.l.Errorf(ctx, "%s: %s: %s", LogPrefixAnalyze, ErrMsgRateLimited, res.Err.Message)
		out := fallback(ReasonRateLimit)
		out.NeedsClarification = true
		return out
	}
	if res.Err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixAnalyze, ErrMsgJSONParseFailed, res.Err)
	}

	out, err := r.normalize(ctx, fields(res.Data))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", LogPrefixAnalyze, err)
		return fallback(ReasonAnalysisError)
	}

	r.l.Infof(ctx, "%s: %s, weather: %t (%s), location: %q, clarification: %t",
		LogPrefixAnalyze, out.Category, out.NeedsWeather, out.Mode, out.Location(), out.NeedsClarification)
	return out
}

// buildContext renders the last ContextTurns turns as "role: content" lines.
func buildContext(history []model.Turn) string {
	if len(history) > ContextTurns {
		history = history[len(history)-ContextTurns:]
	}
	lines := make([]string, len(history))
	for i, t := range history {
		lines[i] = fmt.Sprintf("%s: %s", t.Role, t.Content)
	}
	return strings.Join(lines, "\n")
}

func (r *SemanticRouter) normalize(ctx context.Context, f fields) (model.AnalysisResult, error) {
	confidence, err := f.number("confidence")
	if err != nil {
		return model.AnalysisResult{}, fmt.Errorf("invalid confidence: %w", err)
	}

	out := model.AnalysisResult{
		Category:           model.ParseCategory(f.str("category")),
		NeedsWeather:       f.boolean("needs_weather"),
		Mode:               model.ParseMode(f.str("mode")),
		City:               f.str("city"),
		Country:            f.str("country"),
		When:               f.str("when"),
		NeedsClarification: f.boolean("needs_clarification"),
		Confidence:         confidence,
		Reason:             f.str("reason"),
	}
	if out.Reason == "" {
		out.Reason = ReasonNotProvided
	}

	if raw := f.str("category"); raw != "" && string(out.Category) != strings.ToUpper(raw) {
		r.l.Warnf(ctx, "%s: %s: %q", LogPrefixAnalyze, ErrMsgInvalidCategory, raw)
	}
	if raw := f.str("mode"); raw != "" && string(out.Mode) != strings.ToLower(raw) {
		r.l.Warnf(ctx, "%s: %s: %q", LogPrefixAnalyze, ErrMsgInvalidMode, raw)
	}
	return out, nil
}

func fallback(reason string) model.AnalysisResult {
	return model.AnalysisResult{
		Category: RouterFallbackCategory,
		Mode:     model.ModeNone,
		Reason:   reason,
	}
}
