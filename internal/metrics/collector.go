// Package metrics owns the Prometheus collectors. They are registered once
// per process on the default registry and exposed at /metrics.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Collector struct {
	CacheHits     *prometheus.CounterVec
	CacheMisses   *prometheus.CounterVec
	CacheRequests *prometheus.CounterVec
	CacheLatency  *prometheus.HistogramVec
	CacheHitRatio *prometheus.GaugeVec

	ProviderCalls   *prometheus.CounterVec
	ProviderLatency *prometheus.HistogramVec
	IngestionRuns   *prometheus.CounterVec
	LastIngestion   prometheus.Gauge
}

var (
	collectorOnce   sync.Once
	globalCollector *Collector
)

func getCollector() *Collector {
	collectorOnce.Do(func() {
		globalCollector = &Collector{
			CacheHits: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weatherlog_cache_hits_total",
					Help: "The total number of weather cache hits",
				},
				[]string{"cache_type"},
			),
			CacheMisses: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weatherlog_cache_misses_total",
					Help: "The total number of weather cache misses",
				},
				[]string{"cache_type"},
			),
			CacheRequests: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weatherlog_cache_requests_total",
					Help: "The total number of weather cache lookups",
				},
				[]string{"cache_type"},
			),
			CacheLatency: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "weatherlog_cache_duration_seconds",
					Help:    "Cache operation duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"cache_type", "operation"},
			),
			CacheHitRatio: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Name: "weatherlog_cache_hit_ratio",
					Help: "Cache hit ratio (hits/total requests)",
				},
				[]string{"cache_type"},
			),
			ProviderCalls: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weatherlog_provider_calls_total",
					Help: "Outbound weather provider calls by outcome",
				},
				[]string{"provider", "outcome"},
			),
			ProviderLatency: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "weatherlog_provider_duration_seconds",
					Help:    "Weather provider call duration in seconds",
					Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
				},
				[]string{"provider"},
			),
			IngestionRuns: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weatherlog_ingestion_runs_total",
					Help: "Scheduled and manual weather ingestion runs by trigger and outcome",
				},
				[]string{"trigger", "outcome"},
			),
			LastIngestion: promauto.NewGauge(
				prometheus.GaugeOpts{
					Name: "weatherlog_last_successful_ingestion_timestamp_seconds",
					Help: "Unix time of the last successful ingestion",
				},
			),
		}
	})
	return globalCollector
}
