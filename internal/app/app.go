package app

import (
	"fmt"
	"time"

	"travel-assistant/config"
	"travel-assistant/internal/assistant"
	"travel-assistant/internal/gateway"
	"travel-assistant/internal/router"
	"travel-assistant/internal/session"
	"travel-assistant/internal/weather"
	"travel-assistant/pkg/llmprovider"
	"travel-assistant/pkg/log"
	"travel-assistant/pkg/metrics"
	pkgWeather "travel-assistant/pkg/weather"
)

const (
	defaultRetryDelay      = 4 * time.Second
	defaultMaxRetryDelay   = 10 * time.Second
	defaultMaxTotalTimeout = 90 * time.Second
)

// Pipeline holds the components shared by every conversation. Gateway and
// Router serve standalone analysis; sessions get their own from Factory.
type Pipeline struct {
	Gateway gateway.Gateway
	Weather weather.Provider
	Router  router.Router
	Factory session.Factory
}

// Build wires the LLM gateway, weather provider, and analyzer from cfg. m may be nil.
func Build(cfg *config.Config, l log.Logger, m *metrics.Metrics) (*Pipeline, error) {
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("llm providers: %w", err)
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      cfg.LLM.RetryDelayDuration(defaultRetryDelay),
		MaxRetryDelay:   cfg.LLM.MaxRetryDelayDuration(defaultMaxRetryDelay),
		MaxTotalTimeout: cfg.LLM.MaxTotalTimeoutDuration(defaultMaxTotalTimeout),
	}, l)

	gwCfg := gateway.Config{
		Temperature:   cfg.LLM.Temperature,
		HistoryWindow: cfg.LLM.HistoryWindow,
		ToolMaxTokens: cfg.LLM.MaxTokensTool,
		CallDelay:     cfg.LLM.CallDelay(),
	}
	gw := gateway.New(manager, gwCfg, l, m)

	owm, err := pkgWeather.New(pkgWeather.Config{
		APIKey:        cfg.Weather.APIKey,
		BaseURL:       cfg.Weather.BaseURL,
		GeoURL:        cfg.Weather.GeoURL,
		Timeout:       cfg.Weather.Timeout,
		RetryAttempts: cfg.Weather.RetryAttempts,
		RetryDelay:    cfg.Weather.RetryDelay,
		MaxRetryDelay: cfg.Weather.MaxRetryDelay,
	})
	if err != nil {
		return nil, fmt.Errorf("weather client: %w", err)
	}
	wp := weather.New(owm, weather.Config{
		CacheTTL:  cfg.Weather.CacheTTL,
		CacheSize: cfg.Weather.CacheSize,
	}, l, m)

	r := router.New(gw, l)

	return &Pipeline{
		Gateway: gw,
		Weather: wp,
		Router:  r,
		// Each session paces its own model calls; the provider manager is shared.
		Factory: func(showReasoning bool) *assistant.Assistant {
			sessionGW := gateway.New(manager, gwCfg, l, m)
			return assistant.New(router.New(sessionGW, l), sessionGW, wp, assistant.Config{
				MaxHistory:          cfg.Assistant.MaxHistory,
				ShowReasoning:       showReasoning,
				GenerationMaxTokens: cfg.LLM.MaxTokensGeneration,
				DebugMaxTokens:      cfg.LLM.MaxTokensDebug,
			}, l, m)
		},
	}, nil
}

// LoggerConfig maps the logger section of cfg onto the zap setup.
func LoggerConfig(cfg *config.Config) log.ZapConfig {
	return log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	}
}
