package prompt

import (
	"strings"

	"travel-assistant/internal/model"
)

// ForCategory returns the static system prompt for c.
// COMPLEX_REASONING has no static prompt; use BuildComplexReasoning.
func ForCategory(c model.Category) string {
	switch c {
	case model.CategoryDestination:
		return Destination
	case model.CategoryPacking:
		return Packing
	case model.CategoryAttractions:
		return Attractions
	case model.CategoryWeather:
		return Weather
	default:
		return Fallback
	}
}

// BuildComplexReasoning fills the reasoning template. showReasoning selects the
// step-by-step output format instead of the short final answer.
func BuildComplexReasoning(userMessage string, showReasoning bool) string {
	format := NormalModeInstructions
	if showReasoning {
		format = DebugModeInstructions
	}
	return strings.NewReplacer(
		PlaceholderUserMessage, userMessage,
		PlaceholderOutputFormat, format,
	).Replace(ComplexReasoningTemplate)
}

// BuildAnalysis fills the analysis template with conversation context and the question.
func BuildAnalysis(context, userMessage string) string {
	return strings.NewReplacer(
		PlaceholderContext, context,
		PlaceholderUserMessage, userMessage,
	).Replace(AnalysisTemplate)
}

// System picks the system prompt for a category, building the reasoning prompt when needed.
func System(c model.Category, userMessage string, showReasoning bool) string {
	if c == model.CategoryComplexReasoning {
		return BuildComplexReasoning(userMessage, showReasoning)
	}
	return ForCategory(c)
}
