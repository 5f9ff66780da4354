package assistant

import (
	"sync"

	"travel-assistant/internal/gateway"
	"travel-assistant/internal/router"
	"travel-assistant/internal/weather"
	"travel-assistant/pkg/log"
	"travel-assistant/pkg/metrics"
)

// Assistant answers one conversation. Calls are serialized; give each session its own Assistant.
type Assistant struct {
	router  router.Router
	llm     gateway.Gateway
	weather weather.Provider
	cfg     Config
	l       log.Logger
	metrics *metrics.Metrics

	mu      sync.Mutex
	history *History
}

// New creates an Assistant with an empty history. m may be nil.
func New(r router.Router, llm gateway.Gateway, w weather.Provider, cfg Config, l log.Logger, m *metrics.Metrics) *Assistant {
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = DefaultMaxHistory
	}
	return &Assistant{
		router:  r,
		llm:     llm,
		weather: w,
		cfg:     cfg,
		l:       l,
		metrics: m,
		history: NewHistory(2 * cfg.MaxHistory),
	}
}

// ShowReasoning reports whether complex answers include step-by-step reasoning.
func (a *Assistant) ShowReasoning() bool {
	return a.cfg.ShowReasoning
}
