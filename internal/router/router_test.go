package router

import (
	"context"
	"strings"
	"testing"

	"travel-assistant/internal/gateway"
	"travel-assistant/internal/model"
	"travel-assistant/pkg/log"
)

type mockGateway struct {
	result     gateway.JSONResult
	lastSystem string
	lastUser   string
}

func (m *mockGateway) Complete(ctx context.Context, system, user string, history []model.Turn, maxTokens int) string {
	return ""
}

func (m *mockGateway) CompleteJSON(ctx context.Context, system, user string) gateway.JSONResult {
	m.lastSystem, m.lastUser = system, user
	return m.result
}

func dataResult(data map[string]any) gateway.JSONResult {
	return gateway.JSONResult{Data: data}
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name   string
		result gateway.JSONResult
		want   model.AnalysisResult
	}{
		{
			name: "Full analysis",
			result: dataResult(map[string]any{
				"category": "PACKING", "needs_weather": true, "mode": "climate",
				"city": "Tokyo", "country": "Japan", "when": "December",
				"needs_clarification": false, "confidence": 0.9, "reason": "specific",
			}),
			want: model.AnalysisResult{
				Category: model.CategoryPacking, NeedsWeather: true, Mode: model.ModeClimate,
				City: "Tokyo", Country: "Japan", When: "December", Confidence: 0.9, Reason: "specific",
			},
		},
		{
			name:   "Missing fields get defaults",
			result: dataResult(map[string]any{}),
			want:   model.AnalysisResult{Category: model.CategoryGeneral, Mode: model.ModeNone, Reason: ReasonNotProvided},
		},
		{
			name: "Unknown category and mode are coerced",
			result: dataResult(map[string]any{
				"category": "BUDGET", "mode": "hourly", "city": "null", "when": nil, "needs_weather": "true",
			}),
			want: model.AnalysisResult{Category: model.CategoryGeneral, Mode: model.ModeNone, NeedsWeather: true, Reason: ReasonNotProvided},
		},
		{
			name:   "Parse error envelope normalizes to defaults",
			result: gateway.JSONResult{Err: &gateway.JSONError{Kind: gateway.ErrKindParseError, RawResponse: "no json"}},
			want:   model.AnalysisResult{Category: model.CategoryGeneral, Mode: model.ModeNone, Reason: ReasonNotProvided},
		},
		{
			name:   "Rate limit asks for clarification",
			result: gateway.JSONResult{Err: &gateway.JSONError{Kind: gateway.ErrKindRateLimit, Message: "slow down"}},
			want:   model.AnalysisResult{Category: model.CategoryGeneral, Mode: model.ModeNone, NeedsClarification: true, Reason: ReasonRateLimit},
		},
		{
			name:   "Bad confidence is an analysis error",
			result: dataResult(map[string]any{"category": "WEATHER", "needs_clarification": true, "confidence": "very"}),
			want:   model.AnalysisResult{Category: model.CategoryGeneral, Mode: model.ModeNone, Reason: ReasonAnalysisError},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(&mockGateway{result: tt.result}, log.NewNop())
			got := r.Analyze(context.Background(), "What should I pack for Tokyo in December?", nil)
			if got != tt.want {
				t.Errorf("got  %+v\nwant %+v", got, tt.want)
			}
		})
	}
}

func TestAnalyze_PromptAndContext(t *testing.T) {
	gw := &mockGateway{result: dataResult(map[string]any{"category": "PACKING"})}
	r := New(gw, log.NewNop())

	history := []model.Turn{
		{Role: model.RoleUser, Content: "old question"},
		{Role: model.RoleAssistant, Content: "old answer"},
		{Role: model.RoleUser, Content: "Is Spain good in June?"},
		{Role: model.RoleAssistant, Content: "Yes, June is lovely."},
		{Role: model.RoleUser, Content: "Any festivals?"},
		{Role: model.RoleAssistant, Content: "San Juan on the 23rd."},
	}
	r.Analyze(context.Background(), "So what should I pack for that kind of trip?", history)

	if !strings.HasPrefix(gw.lastSystem, "You are a travel assistant analyzing questions") {
		t.Errorf("unexpected system prompt %q", gw.lastSystem)
	}
	wantContext := "Conversation Context: user: Is Spain good in June?\nassistant: Yes, June is lovely.\nuser: Any festivals?\nassistant: San Juan on the 23rd."
	if !strings.Contains(gw.lastUser, wantContext) {
		t.Error("expected the last 4 turns as context")
	}
	if strings.Contains(gw.lastUser, "old question") {
		t.Error("context must be limited to the last 4 turns")
	}
	if !strings.Contains(gw.lastUser, `Question: "So what should I pack for that kind of trip?"`) {
		t.Error("question missing from prompt")
	}
}

func TestBuildContext_Empty(t *testing.T) {
	if got := buildContext(nil); got != "" {
		t.Errorf("expected empty context, got %q", got)
	}
}
