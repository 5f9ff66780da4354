package prompt

import (
	"strings"
	"testing"

	"travel-assistant/internal/model"
)

func TestForCategory(t *testing.T) {
	tests := map[model.Category]string{
		model.CategoryDestination: Destination,
		model.CategoryPacking:     Packing,
		model.CategoryAttractions: Attractions,
		model.CategoryWeather:     Weather,
		model.CategoryGeneral:     Fallback,
		model.Category("BUDGET"):  Fallback,
	}
	for c, want := range tests {
		if got := ForCategory(c); got != want {
			t.Errorf("ForCategory(%s) returned the wrong prompt", c)
		}
	}
}

func TestBuildComplexReasoning(t *testing.T) {
	q := "Two weeks in Asia in August on $2000, I hate humidity"

	t.Run("Normal mode", func(t *testing.T) {
		out := BuildComplexReasoning(q, false)
		if !strings.Contains(out, "`"+q+"`") {
			t.Error("user message not interpolated")
		}
		if !strings.Contains(out, "maximum 2-3 sentences") || strings.Contains(out, "[THINKING PROCESS]") {
			t.Error("expected concise output instructions")
		}
		if strings.Contains(out, PlaceholderOutputFormat) || strings.Contains(out, PlaceholderUserMessage) {
			t.Error("placeholders left in prompt")
		}
	})

	t.Run("Reasoning mode", func(t *testing.T) {
		out := System(model.CategoryComplexReasoning, q, true)
		if !strings.Contains(out, "[THINKING PROCESS]") || !strings.Contains(out, "[RECOMMENDATION]") {
			t.Error("expected step-by-step output instructions")
		}
	})
}

func TestBuildAnalysis(t *testing.T) {
	out := BuildAnalysis("user: Spain in June?\nassistant: Great choice.", "What should I pack for that?")

	if !strings.Contains(out, "Conversation Context: user: Spain in June?\nassistant: Great choice.") {
		t.Error("context not interpolated")
	}
	if !strings.Contains(out, `Question: "What should I pack for that?"`) {
		t.Error("question not interpolated")
	}
	if !strings.Contains(out, "{\n  \"category\"") || strings.Contains(out, "{{") {
		t.Error("JSON skeleton should have single braces")
	}
}
