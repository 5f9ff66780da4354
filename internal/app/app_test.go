package app

import (
	"strings"
	"testing"
	"time"

	"travel-assistant/config"
	"travel-assistant/pkg/log"
)

func testConfig() *config.Config {
	return &config.Config{
		LLM: config.LLMConfig{
			Providers: []config.ProviderConfig{
				{Name: "groq", Enabled: true, Priority: 1, APIKey: "k", Model: "llama-3.3-70b-versatile"},
			},
			RetryAttempts:       1,
			Temperature:         0.7,
			MaxTokensTool:       128,
			MaxTokensGeneration: 1024,
			MaxTokensDebug:      1024,
			HistoryWindow:       10,
		},
		Assistant: config.AssistantConfig{MaxHistory: 10, SessionTTL: time.Minute},
		Weather: config.WeatherConfig{
			APIKey:    "w",
			Timeout:   time.Second,
			CacheTTL:  300 * time.Second,
			CacheSize: 16,
		},
	}
}

func TestBuild(t *testing.T) {
	p, err := Build(testConfig(), log.NewNop(), nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if p.Gateway == nil || p.Weather == nil || p.Router == nil || p.Factory == nil {
		t.Fatalf("incomplete pipeline: %+v", p)
	}

	a := p.Factory(true)
	if !a.ShowReasoning() {
		t.Error("factory should honour the reasoning flag")
	}
	if b := p.Factory(false); b == a || b.ShowReasoning() {
		t.Error("factory should return a fresh assistant per call")
	}
}

func TestBuild_Errors(t *testing.T) {
	t.Run("No providers", func(t *testing.T) {
		cfg := testConfig()
		cfg.LLM.Providers = nil
		if _, err := Build(cfg, log.NewNop(), nil); err == nil || !strings.Contains(err.Error(), "llm providers") {
			t.Fatalf("expected llm providers error, got %v", err)
		}
	})

	t.Run("Missing weather key", func(t *testing.T) {
		cfg := testConfig()
		cfg.Weather.APIKey = ""
		if _, err := Build(cfg, log.NewNop(), nil); err == nil || !strings.Contains(err.Error(), "weather client") {
			t.Fatalf("expected weather client error, got %v", err)
		}
	})
}
