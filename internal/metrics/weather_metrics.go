package metrics

import (
	"sync"
	"time"

	"weatherlog.app/internal/ports"
)

const (
	OutcomeSuccess = "success"
	OutcomePanic   = "panic"
)

// WeatherMetrics records provider calls and ingestion runs in Prometheus
// and keeps in-process totals for the JSON metrics endpoint.
type WeatherMetrics struct {
	mu            sync.RWMutex
	providerCalls map[string]int64
	ingestions    map[string]int64
	lastIngestion time.Time
	collector     *Collector
}

func NewWeatherMetrics() *WeatherMetrics {
	return &WeatherMetrics{
		providerCalls: make(map[string]int64),
		ingestions:    make(map[string]int64),
		collector:     getCollector(),
	}
}

func (m *WeatherMetrics) RecordProviderCall(provider, outcome string, duration time.Duration) {
	m.collector.ProviderCalls.WithLabelValues(provider, outcome).Inc()
	m.collector.ProviderLatency.WithLabelValues(provider).Observe(duration.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()
	m.providerCalls[outcome]++
}

func (m *WeatherMetrics) RecordIngestion(trigger, outcome string) {
	m.collector.IngestionRuns.WithLabelValues(trigger, outcome).Inc()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.ingestions[trigger+":"+outcome]++
	if outcome == OutcomeSuccess {
		m.lastIngestion = time.Now().UTC()
		m.collector.LastIngestion.Set(float64(m.lastIngestion.Unix()))
	}
}

func (m *WeatherMetrics) GetWeatherStats() ports.WeatherStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := ports.WeatherStats{
		ProviderCalls: make(map[string]int64, len(m.providerCalls)),
		Ingestions:    make(map[string]int64, len(m.ingestions)),
		LastIngestion: m.lastIngestion,
	}
	for k, v := range m.providerCalls {
		stats.ProviderCalls[k] = v
	}
	for k, v := range m.ingestions {
		stats.Ingestions[k] = v
	}
	return stats
}
