package gateway

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"travel-assistant/pkg/log"
	"travel-assistant/pkg/metrics"
)

type gateway struct {
	llm     Generator
	limiter *rate.Limiter
	cfg     Config
	l       log.Logger
	metrics *metrics.Metrics
}

var _ Gateway = (*gateway)(nil)

// New creates a Gateway. Each call waits until cfg.CallDelay has passed since
// the previous call finished. Pacing is per Gateway. m may be nil.
func New(llm Generator, cfg Config, l log.Logger, m *metrics.Metrics) Gateway {
	g := &gateway{
		llm:     llm,
		cfg:     cfg,
		l:       l,
		metrics: m,
	}
	if cfg.CallDelay > 0 {
		g.limiter = rate.NewLimiter(rate.Every(cfg.CallDelay), 1)
	}
	return g
}

// waitTurn blocks until the post-call delay of the previous call has elapsed.
func (g *gateway) waitTurn(ctx context.Context) error {
	if g.limiter == nil {
		return nil
	}
	for {
		tokens := g.limiter.Tokens()
		if tokens >= 1 {
			return nil
		}
		timer := time.NewTimer(time.Duration((1 - tokens) * float64(g.cfg.CallDelay)))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// finishTurn starts the post-call delay.
func (g *gateway) finishTurn() {
	if g.limiter != nil {
		g.limiter.Allow()
	}
}
