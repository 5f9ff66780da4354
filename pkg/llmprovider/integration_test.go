package llmprovider_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"travel-assistant/config"
	"travel-assistant/pkg/llmprovider"
	"travel-assistant/pkg/log"
)

// TestIntegration_ConfigToManagerFlow verifies that configuration,
// provider initialization, and manager work together correctly
func TestIntegration_ConfigToManagerFlow(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "anthropic", Enabled: true, Priority: 2, APIKey: "test-anthropic-key", Model: "claude-3-5-haiku-latest"},
			{Name: "groq", Enabled: true, Priority: 1, APIKey: "test-groq-key", Model: "llama-3.3-70b-versatile"},
			{Name: "deepseek", Enabled: false, Priority: 3, APIKey: "test-deepseek-key", Model: "deepseek-chat"},
		},
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      "1s",
	}

	providers, err := llmprovider.InitializeProviders(cfg)
	if err != nil {
		t.Fatalf("Failed to initialize providers: %v", err)
	}

	if len(providers) != 2 {
		t.Fatalf("Expected 2 providers, got %d", len(providers))
	}
	if providers[0].Name() != "groq" || providers[1].Name() != "anthropic" {
		t.Errorf("Expected [groq anthropic], got [%s %s]", providers[0].Name(), providers[1].Name())
	}

	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      cfg.RetryDelayDuration(time.Second),
	}, log.NewNop())

	if got := len(manager.Providers()); got != 2 {
		t.Errorf("Expected manager to hold 2 providers, got %d", got)
	}
}

func TestInitializeProviders_SkipsBrokenProviders(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "groq", Enabled: true, Priority: 1, APIKey: "", Model: "m"},
			{Name: "mystery", Enabled: true, Priority: 2, APIKey: "k", Model: "m"},
			{Name: "deepseek", Enabled: true, Priority: 3, APIKey: "k", Model: "deepseek-chat", Timeout: "5s"},
		},
	}

	providers, err := llmprovider.InitializeProviders(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(providers) != 1 || providers[0].Name() != "deepseek" {
		t.Fatalf("Expected only deepseek, got %d providers", len(providers))
	}

	if _, err := llmprovider.InitializeProviders(&config.LLMConfig{}); !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestOpenAIAdapter_AgainstCompatibleServer(t *testing.T) {
	var lastBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewDecoder(r.Body).Decode(&lastBody)

		msgs, _ := lastBody["messages"].([]any)
		last, _ := msgs[len(msgs)-1].(map[string]any)
		if last["content"] == "trigger 429" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"Rate limit reached","type":"rate_limit_exceeded"}}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "llama-3.3-70b-versatile",
			"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "Pack a coat."}}],
			"usage": {"prompt_tokens": 12, "completion_tokens": 4, "total_tokens": 16}
		}`))
	}))
	defer ts.Close()

	adapter := llmprovider.NewOpenAIAdapter("groq", "test-key", ts.URL+"/", "llama-3.3-70b-versatile")

	t.Run("Success", func(t *testing.T) {
		resp, err := adapter.GenerateContent(context.Background(), &llmprovider.Request{
			SystemInstruction: &llmprovider.Message{Role: llmprovider.RoleSystem, Parts: []llmprovider.Part{{Text: "be brief"}}},
			Messages: []llmprovider.Message{
				llmprovider.NewTextMessage(llmprovider.RoleUser, "earlier question"),
				llmprovider.NewTextMessage(llmprovider.RoleAssistant, "earlier answer"),
				llmprovider.NewTextMessage(llmprovider.RoleUser, "What to pack?"),
			},
			Temperature: 0.7,
			MaxTokens:   64,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Content.Text() != "Pack a coat." {
			t.Errorf("unexpected content %q", resp.Content.Text())
		}
		if resp.Usage.TotalTokens != 16 {
			t.Errorf("expected 16 total tokens, got %d", resp.Usage.TotalTokens)
		}
		msgs, _ := lastBody["messages"].([]any)
		if len(msgs) != 4 {
			t.Errorf("expected system + 3 turns, got %d messages", len(msgs))
		}
	})

	t.Run("Rate limit is classified", func(t *testing.T) {
		_, err := adapter.GenerateContent(context.Background(), &llmprovider.Request{
			Messages: []llmprovider.Message{llmprovider.NewTextMessage(llmprovider.RoleUser, "trigger 429")},
		})
		if !errors.Is(err, llmprovider.ErrProviderRateLimited) {
			t.Fatalf("expected ErrProviderRateLimited, got %v", err)
		}
	})
}

func TestDeepSeekAdapter_ClassifiesErrors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":{"message":"overloaded"}}`))
	}))
	defer ts.Close()

	providers, err := llmprovider.InitializeProviders(&config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "deepseek", Enabled: true, Priority: 1, APIKey: "k", Model: "deepseek-chat", BaseURL: ts.URL},
		},
	})
	if err != nil {
		t.Fatalf("InitializeProviders: %v", err)
	}

	_, err = providers[0].GenerateContent(context.Background(), &llmprovider.Request{
		Messages: []llmprovider.Message{llmprovider.NewTextMessage(llmprovider.RoleUser, "hi")},
	})
	if !errors.Is(err, llmprovider.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if !llmprovider.IsTransient(err) {
		t.Error("503 should be transient")
	}
}

func TestInitializeProviders_OpenAICompatibleNames(t *testing.T) {
	providers, err := llmprovider.InitializeProviders(&config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "qwen", Enabled: true, Priority: 2, APIKey: "k", Model: "qwen-plus"},
			{Name: "gemini", Enabled: true, Priority: 1, APIKey: "k", Model: "gemini-2.0-flash"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(providers) != 2 || providers[0].Name() != "gemini" || providers[1].Name() != "qwen" {
		t.Fatalf("unexpected providers: %d", len(providers))
	}
	if providers[1].Model() != "qwen-plus" {
		t.Errorf("expected qwen-plus, got %s", providers[1].Model())
	}
}

func TestDeepSeekAdapter_UsesGenerationBudget(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"x","choices":[{"index":0,"finish_reason":"length","message":{"role":"assistant","content":"Bring a"}}],"usage":{"prompt_tokens":9,"completion_tokens":1024,"total_tokens":1033}}`))
	}))
	defer ts.Close()

	providers, err := llmprovider.InitializeProviders(&config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "deepseek", Enabled: true, Priority: 1, APIKey: "k", Model: "deepseek-chat", BaseURL: ts.URL},
		},
		Temperature:         0.7,
		MaxTokensGeneration: 1024,
	})
	if err != nil {
		t.Fatalf("InitializeProviders: %v", err)
	}

	resp, err := providers[0].GenerateContent(context.Background(), &llmprovider.Request{
		Messages: []llmprovider.Message{llmprovider.NewTextMessage(llmprovider.RoleUser, "What should I pack for Oslo?")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["max_tokens"] != float64(1024) || got["temperature"] != 0.7 {
		t.Errorf("expected generation budget in request, got max_tokens=%v temperature=%v", got["max_tokens"], got["temperature"])
	}
	if !resp.Truncated {
		t.Error("finish_reason length should mark the response truncated")
	}
}
