package spot

import (
	"context"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/singleflight"

	portssvc "github.com/SscSPs/exchange_shop/internal/core/ports/services"
	"github.com/SscSPs/exchange_shop/internal/middleware"
)

const tableKey = "eur"

// cachingSource decorates a Fetcher with time-bounded caching of both successes and failures.
// A failed fetch is remembered as "no spot" for failureTTL and never retried within the same call.
type cachingSource struct {
	next    Fetcher
	ok      *expirable.LRU[string, map[string]float64]
	failed  *expirable.LRU[string, struct{}]
	group   singleflight.Group
	fetches *prometheus.CounterVec
}

// Option configures the caching source.
type Option func(*cachingSource)

// WithFetchCounter counts upstream fetches by result ("ok", "empty", "error").
func WithFetchCounter(c *prometheus.CounterVec) Option {
	return func(s *cachingSource) {
		s.fetches = c
	}
}

// NewCachingSource returns a SpotSource reading through next.
func NewCachingSource(next Fetcher, ttl, failureTTL time.Duration, opts ...Option) portssvc.SpotSource {
	s := &cachingSource{
		next:   next,
		ok:     expirable.NewLRU[string, map[string]float64](1, nil, ttl),
		failed: expirable.NewLRU[string, struct{}](1, nil, failureTTL),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EurSpots returns the cached spot table, fetching it when stale. It never returns nil.
func (s *cachingSource) EurSpots(ctx context.Context) map[string]float64 {
	if spots, ok := s.ok.Get(tableKey); ok {
		return spots
	}
	if _, failed := s.failed.Get(tableKey); failed {
		return map[string]float64{}
	}

	// The fetch is shared by every waiting caller, so one caller going away must not cancel it.
	// The upstream client carries its own timeout.
	fetchCtx := context.WithoutCancel(ctx)
	v, _, _ := s.group.Do(tableKey, func() (any, error) {
		spots, err := s.next.FetchEurSpots(fetchCtx)
		if err != nil {
			middleware.GetLoggerFromCtx(ctx).Warn("Spot rate fetch failed", slog.String("error", err.Error()))
			s.count("error")
			s.failed.Add(tableKey, struct{}{})
			return map[string]float64{}, nil
		}
		if len(spots) == 0 {
			s.count("empty")
			s.failed.Add(tableKey, struct{}{})
			return map[string]float64{}, nil
		}
		s.count("ok")
		s.ok.Add(tableKey, spots)
		return spots, nil
	})
	return v.(map[string]float64)
}

func (s *cachingSource) count(result string) {
	if s.fetches != nil {
		s.fetches.WithLabelValues(result).Inc()
	}
}
