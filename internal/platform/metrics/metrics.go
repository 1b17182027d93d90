// Package metrics owns the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the application collectors on a dedicated registry.
type Metrics struct {
	registry *prometheus.Registry

	// QuotesTotal counts computed quotes by pricing strategy.
	QuotesTotal *prometheus.CounterVec
	// SpotFetchTotal counts live spot fetch attempts by result.
	SpotFetchTotal *prometheus.CounterVec
	// BookingsTotal counts reservation attempts by outcome.
	BookingsTotal *prometheus.CounterVec
}

// New creates the collectors and registers them, together with the Go runtime
// and process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		QuotesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "exchange_shop",
			Name:      "quotes_total",
			Help:      "Buy/sell quotes computed, by pricing strategy.",
		}, []string{"strategy"}),
		SpotFetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "exchange_shop",
			Name:      "spot_fetch_total",
			Help:      "Live spot rate fetches, by result.",
		}, []string{"result"}),
		BookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "exchange_shop",
			Name:      "bookings_total",
			Help:      "Reservation attempts, by outcome.",
		}, []string{"outcome"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.QuotesTotal,
		m.SpotFetchTotal,
		m.BookingsTotal,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
