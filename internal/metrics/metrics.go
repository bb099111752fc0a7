// Package metrics holds the Prometheus collectors for the recommendation
// pipeline and the HTTP layer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values for RecommendationsTotal
const (
	OutcomeMatched = "matched"
	OutcomeEmpty   = "empty"
)

var (
	// Engine metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skinlens_recommendations_total",
			Help: "Total number of engine calls by result outcome",
		},
		[]string{"outcome"},
	)

	StageCandidates = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skinlens_stage_candidates",
			Help:    "Number of candidates surviving each pipeline stage",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		},
		[]string{"stage"}, // "filter", "concern", "refine", "select"
	)

	AliasFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skinlens_alias_fallback_total",
			Help: "Product type labels with no alias entry, matched verbatim",
		},
	)

	UnknownConcerns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skinlens_unknown_concern_total",
			Help: "Concern keywords ignored because no concern rule exists",
		},
	)

	ReportEntries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skinlens_report_entries_total",
			Help: "AI product recommendation entries evaluated",
		},
	)

	// HTTP metrics
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skinlens_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skinlens_rate_limited_total",
			Help: "Requests rejected by the per-IP rate limiter",
		},
	)

	// Cache metrics
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skinlens_cache_hits_total",
			Help: "Report responses served from cache",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skinlens_cache_misses_total",
			Help: "Report responses computed because no cached copy existed",
		},
	)
)

// NewCacheEntriesGauge reports the response cache's current entry count.
// The caller registers it once the cache exists.
func NewCacheEntriesGauge(size func() int) prometheus.GaugeFunc {
	return prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "skinlens_cache_entries",
			Help: "Encoded report responses currently held in the cache",
		},
		func() float64 { return float64(size()) },
	)
}

// ObserveStage records the candidate count after a pipeline stage
func ObserveStage(stage string, count int) {
	StageCandidates.WithLabelValues(stage).Observe(float64(count))
}

// RecordOutcome counts one engine call by whether it produced products
func RecordOutcome(matched bool) {
	if matched {
		RecommendationsTotal.WithLabelValues(OutcomeMatched).Inc()
		return
	}
	RecommendationsTotal.WithLabelValues(OutcomeEmpty).Inc()
}
