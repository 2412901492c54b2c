package infrastructure

import (
	"context"

	"weatherlog.app/internal/ports"
)

// MetricsCollectorAdapter aggregates cache and provider statistics for the JSON metrics endpoint
type MetricsCollectorAdapter struct {
	weatherMetrics ports.WeatherMetrics
	cacheMetrics   ports.CacheMetrics
}

// MetricsCollectorConfig holds configuration for creating the metrics collector
type MetricsCollectorConfig struct {
	WeatherMetrics ports.WeatherMetrics
	CacheMetrics   ports.CacheMetrics
}

// NewMetricsCollectorAdapter creates a new metrics collector adapter
func NewMetricsCollectorAdapter(config MetricsCollectorConfig) *MetricsCollectorAdapter {
	return &MetricsCollectorAdapter{
		weatherMetrics: config.WeatherMetrics,
		cacheMetrics:   config.CacheMetrics,
	}
}

// GetMetrics returns aggregated metrics; sections for absent collectors are omitted
func (m *MetricsCollectorAdapter) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	metrics := make(map[string]interface{})

	if m.weatherMetrics != nil {
		stats := m.weatherMetrics.GetWeatherStats()
		weather := map[string]interface{}{
			"providerCalls": stats.ProviderCalls,
			"ingestions":    stats.Ingestions,
		}
		if !stats.LastIngestion.IsZero() {
			weather["lastIngestion"] = stats.LastIngestion
		}
		metrics["weather"] = weather
	}

	if m.cacheMetrics != nil {
		cacheStats := m.cacheMetrics.GetStats()
		metrics["cache"] = map[string]interface{}{
			"hits":      cacheStats.Hits,
			"misses":    cacheStats.Misses,
			"total_ops": cacheStats.TotalOps,
			"hit_ratio": cacheStats.HitRatio,
			"updated":   cacheStats.LastUpdated,
		}
	}

	return metrics, nil
}
