package assistant

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"travel-assistant/internal/gateway"
	"travel-assistant/internal/model"
	"travel-assistant/internal/prompt"
	"travel-assistant/internal/weather"
	"travel-assistant/pkg/metrics"
)

// Respond answers message and records both turns in the history.
func (a *Assistant) Respond(ctx context.Context, message string) string {
	return a.Answer(ctx, message).Text
}

// Answer runs one turn: analyze, then either clarify or enrich with weather and generate.
func (a *Assistant) Answer(ctx context.Context, message string) Reply {
	a.mu.Lock()
	defer a.mu.Unlock()

	start := time.Now()
	a.l.Infof(ctx, "%s: user input: %q", LogPrefixRespond, message)

	analysis := a.router.Analyze(ctx, message, a.history.Turns())

	if analysis.NeedsClarification && analysis.Category != model.CategoryComplexReasoning {
		a.l.Infof(ctx, "%s: asking for clarification on %s question", LogPrefixRespond, analysis.Category)
		system := prompt.System(analysis.Category, message, a.cfg.ShowReasoning)

		a.history.Append(model.Turn{Role: model.RoleUser, Content: message})
		text := a.sanitize(ctx, a.llm.Complete(ctx, system, message, a.history.Turns(), a.cfg.GenerationMaxTokens))
		a.history.Append(model.Turn{Role: model.RoleAssistant, Content: text})

		a.metrics.ObserveResponse(string(analysis.Category), metrics.PathClarify, time.Since(start))
		return Reply{Text: text, Analysis: analysis, Clarified: true}
	}

	var facts []string
	if fact := a.weatherFact(ctx, analysis); fact != "" {
		facts = append(facts, factPrefixWeather+fact)
	}

	reasoning := analysis.Category == model.CategoryComplexReasoning
	system := prompt.System(analysis.Category, message, a.cfg.ShowReasoning)

	a.history.Append(model.Turn{Role: model.RoleUser, Content: message})

	user := ComposeMessage(message, facts)
	maxTokens := a.cfg.GenerationMaxTokens
	if reasoning {
		// the question is already embedded in the reasoning prompt
		user = ""
		if a.cfg.ShowReasoning {
			maxTokens = a.cfg.DebugMaxTokens
			a.l.Infof(ctx, "%s: using debug token limit %d", LogPrefixRespond, maxTokens)
		}
	}

	text := a.sanitize(ctx, a.llm.Complete(ctx, system, user, a.history.Turns(), maxTokens))
	a.history.Append(model.Turn{Role: model.RoleAssistant, Content: text})

	a.metrics.ObserveResponse(string(analysis.Category), metrics.PathAnswer, time.Since(start))
	return Reply{Text: text, Analysis: analysis, Facts: facts}
}

// ClearHistory forgets the conversation.
func (a *Assistant) ClearHistory() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.history.Clear()
}

// History returns a copy of the conversation, oldest turn first.
func (a *Assistant) History() []model.Turn {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.history.Turns()
}

// ComposeMessage builds the "Task: ..." message with an optional facts block.
func ComposeMessage(message string, facts []string) string {
	if len(facts) == 0 {
		return fmt.Sprintf(taskTemplate, message)
	}
	return fmt.Sprintf(factsBlockTemplate, message, strings.Join(facts, "\n- "))
}

func (a *Assistant) sanitize(ctx context.Context, text string) string {
	if gateway.IsApology(text) {
		a.l.Errorf(ctx, "%s: gateway apology replaced: %s", LogPrefixRespond, text)
		return HighDemandMessage
	}
	return text
}

// weatherFact fetches weather when the analysis asks for it. An empty result means no fact.
func (a *Assistant) weatherFact(ctx context.Context, analysis model.AnalysisResult) string {
	if !analysis.NeedsWeather || !analysis.Mode.Fetchable() {
		return ""
	}
	location := analysis.Location()
	if location == "" {
		a.l.Warnf(ctx, "%s: no location found for weather data", LogPrefixRespond)
		return ""
	}

	a.l.Infof(ctx, "%s: fetching %s weather for %s", LogPrefixRespond, analysis.Mode, location)
	snap := a.weather.Fetch(ctx, location, analysis.Mode, analysis.When)
	return formatFact(location, analysis.Mode, snap)
}

func formatFact(location string, mode model.Mode, snap weather.Snapshot) string {
	if snap.Failed() {
		return fmt.Sprintf(factUnavailable, snap.Err.Message)
	}

	switch mode {
	case model.ModeClimate:
		return fmt.Sprintf(factClimate, location, snap.Message)
	case model.ModeForecast:
		if !snap.HasReading() {
			return fmt.Sprintf(factUnavailable, snap.Message)
		}
		r := snap.Reading
		if snap.Range != nil {
			return fmt.Sprintf(factForecastRange, location, formatTemp(snap.Range.Min), formatTemp(snap.Range.Max), r.Description, r.Humidity)
		}
		return fmt.Sprintf(factForecast, location, formatTemp(r.Temperature), r.Description)
	default:
		if !snap.HasReading() {
			return fmt.Sprintf(factUnavailable, snap.Message)
		}
		r := snap.Reading
		return fmt.Sprintf(factCurrent, location, formatTemp(r.Temperature), r.Description, r.Humidity)
	}
}

// formatTemp prints whole degrees with one decimal ("10.0") and keeps other values as reported.
func formatTemp(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
