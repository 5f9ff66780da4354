package llmprovider

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"travel-assistant/config"
	"travel-assistant/pkg/deepseek"
)

const (
	groqBaseURL   = "https://api.groq.com/openai/v1"
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	qwenBaseURL   = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
)

// InitializeProviders creates Provider instances from config.LLMConfig
// Returns providers sorted by priority (ascending) with disabled providers filtered out
// Skips providers that fail to initialize instead of failing the entire service
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	if len(cfg.Providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.Slice(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(p, cfg)
		if err != nil {
			initErrors = append(initErrors,
				fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config.
// llm supplies the shared generation budget for clients that hold defaults.
func createProvider(cfg config.ProviderConfig, llm *config.LLMConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}

	switch cfg.Name {
	case "groq":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = groqBaseURL
		}
		return NewOpenAIAdapter("groq", cfg.APIKey, baseURL, cfg.Model), nil

	case "openai":
		return NewOpenAIAdapter("openai", cfg.APIKey, cfg.BaseURL, cfg.Model), nil

	// Both expose OpenAI-compatible chat completions.
	case "gemini", "qwen":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = qwenBaseURL
			if cfg.Name == "gemini" {
				baseURL = geminiBaseURL
			}
		}
		return NewOpenAIAdapter(cfg.Name, cfg.APIKey, baseURL, cfg.Model), nil

	case "anthropic", "claude":
		return NewAnthropicAdapter(cfg.APIKey, cfg.BaseURL, cfg.Model), nil

	case "deepseek":
		client, err := deepseek.New(deepseek.Config{
			APIKey:      cfg.APIKey,
			Model:       cfg.Model,
			BaseURL:     cfg.BaseURL,
			Timeout:     providerTimeout(cfg.Timeout, deepseek.DefaultTimeout),
			MaxTokens:   llm.MaxTokensGeneration,
			Temperature: llm.Temperature,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create deepseek client: %w", err)
		}
		return NewDeepSeekAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

func providerTimeout(value string, def time.Duration) time.Duration {
	if value == "" {
		return def
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
