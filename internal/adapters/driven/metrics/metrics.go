// Package metrics records search and index reload metrics with Prometheus
// and exposes them for scraping.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/custodia-labs/topicsearch/internal/core/ports/driven"
)

// Verify interface compliance.
var _ driven.SearchRecorder = (*Recorder)(nil)

const namespace = "topicsearch"

// Search outcome label values.
const (
	outcomeHit        = "hit"
	outcomeZeroResult = "zero_result"
	outcomeError      = "error"
)

// Recorder holds the Prometheus collectors. Each Recorder owns its registry
// so several can coexist in one process.
type Recorder struct {
	registry *prometheus.Registry

	SearchQueriesTotal *prometheus.CounterVec
	SearchLatency      prometheus.Histogram
	SearchResultsCount prometheus.Histogram
	IndexReloadsTotal  *prometheus.CounterVec
	IndexEntries       prometheus.Gauge
}

// New creates a Recorder with all collectors registered, plus the Go
// runtime and process collectors.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		SearchQueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "search_queries_total",
				Help:      "Total search queries by outcome (hit, zero_result, error).",
			},
			[]string{"outcome"},
		),
		SearchLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_latency_seconds",
				Help:      "Search latency in seconds.",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
			},
		),
		SearchResultsCount: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_results_count",
				Help:      "Number of results returned per search.",
				Buckets:   []float64{0, 1, 5, 10, 20},
			},
		),
		IndexReloadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "index_reloads_total",
				Help:      "Total index loads by status (ok, error).",
			},
			[]string{"status"},
		),
		IndexEntries: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "index_entries",
				Help:      "Number of entries in the last successfully loaded index.",
			},
		),
	}

	r.registry.MustRegister(
		r.SearchQueriesTotal,
		r.SearchLatency,
		r.SearchResultsCount,
		r.IndexReloadsTotal,
		r.IndexEntries,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// ObserveSearch records one search call. Failed searches only count
// towards the error outcome.
func (r *Recorder) ObserveSearch(elapsed time.Duration, results int, err error) {
	switch {
	case err != nil:
		r.SearchQueriesTotal.WithLabelValues(outcomeError).Inc()
		return
	case results == 0:
		r.SearchQueriesTotal.WithLabelValues(outcomeZeroResult).Inc()
	default:
		r.SearchQueriesTotal.WithLabelValues(outcomeHit).Inc()
	}
	r.SearchLatency.Observe(elapsed.Seconds())
	r.SearchResultsCount.Observe(float64(results))
}

// ObserveReload records one index load.
func (r *Recorder) ObserveReload(entries int, err error) {
	if err != nil {
		r.IndexReloadsTotal.WithLabelValues("error").Inc()
		return
	}
	r.IndexReloadsTotal.WithLabelValues("ok").Inc()
	r.IndexEntries.Set(float64(entries))
}

// Handler returns the scrape handler for this Recorder's registry.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
