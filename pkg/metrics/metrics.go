package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "travel_assistant"

// Response paths recorded by ObserveResponse.
const (
	PathClarify = "clarify"
	PathAnswer  = "answer"
)

// Weather outcomes recorded by ObserveWeather.
const (
	WeatherHit      = "hit"
	WeatherMiss     = "miss"
	WeatherSoftMiss = "soft_miss"
	WeatherError    = "error"
)

// LLM call statuses recorded by ObserveLLMCall.
const (
	LLMOK      = "ok"
	LLMApology = "apology"
)

// Metrics holds the service collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	responses      *prometheus.CounterVec
	weatherFetches *prometheus.CounterVec
	llmCalls       *prometheus.CounterVec
	respondLatency prometheus.Histogram
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		responses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "responses_total",
			Help:      "Assistant responses by question category and pipeline path",
		}, []string{"category", "path"}),
		weatherFetches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weather_fetches_total",
			Help:      "Weather snapshot requests by mode and outcome",
		}, []string{"mode", "outcome"}),
		llmCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_calls_total",
			Help:      "Chat completion calls by final status",
		}, []string{"status"}),
		respondLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "respond_duration_seconds",
			Help:      "End-to-end latency of one assistant turn",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 40, 80},
		}),
	}
}

// ObserveResponse counts one finished assistant turn.
func (m *Metrics) ObserveResponse(category, path string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.responses.WithLabelValues(category, path).Inc()
	m.respondLatency.Observe(elapsed.Seconds())
}

// ObserveWeather counts one weather lookup.
func (m *Metrics) ObserveWeather(mode, outcome string) {
	if m == nil {
		return
	}
	m.weatherFetches.WithLabelValues(mode, outcome).Inc()
}

// ObserveLLMCall counts one gateway completion.
func (m *Metrics) ObserveLLMCall(status string) {
	if m == nil {
		return
	}
	m.llmCalls.WithLabelValues(status).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
