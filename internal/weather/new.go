package weather

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"travel-assistant/pkg/log"
	"travel-assistant/pkg/metrics"
	pkgWeather "travel-assistant/pkg/weather"
)

const (
	defaultCacheSize = 512
	defaultCacheTTL  = 300
)

type provider struct {
	client  pkgWeather.IWeather
	cache   *expirable.LRU[string, Snapshot]
	l       log.Logger
	metrics *metrics.Metrics
}

var _ Provider = (*provider)(nil)

// New creates a Provider backed by client. Successful snapshots are cached for cfg.CacheTTL.
func New(client pkgWeather.IWeather, cfg Config, l log.Logger, m *metrics.Metrics) Provider {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL * time.Second
	}
	return &provider{
		client:  client,
		cache:   expirable.NewLRU[string, Snapshot](cfg.CacheSize, nil, cfg.CacheTTL),
		l:       l,
		metrics: m,
	}
}
