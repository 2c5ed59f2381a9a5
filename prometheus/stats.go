// Package prometheus provides a Prometheus-backed implementation of
// shopcrawl.Stats plus the HTTP handler for scraping it.
package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopcrawl/shopcrawl"
)

// Ensure Stats implements shopcrawl.Stats at compile time.
var _ shopcrawl.Stats = (*Stats)(nil)

// Stats records crawl counters as a Prometheus counter vector labeled by
// stat name. Increments are lock-free and safe for concurrent use.
type Stats struct {
	registry *prometheus.Registry
	counters *prometheus.CounterVec
}

// NewStats creates a Stats with its own registry.
func NewStats() *Stats {
	registry := prometheus.NewRegistry()
	counters := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shopcrawl_events_total",
		Help: "Total crawl events by stat name.",
	}, []string{"stat"})
	registry.MustRegister(counters)

	return &Stats{
		registry: registry,
		counters: counters,
	}
}

// Inc increments the named counter by one.
func (s *Stats) Inc(name string) {
	s.counters.WithLabelValues(name).Inc()
}

// Handler returns the /metrics handler for this Stats' registry.
func (s *Stats) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}
