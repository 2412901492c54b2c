package metrics

import (
	"sync"
	"time"

	"weatherlog.app/internal/ports"
)

// CacheMetrics tracks read-through cache hits and misses for one backend
type CacheMetrics struct {
	cacheType   string
	hits        int64
	misses      int64
	total       int64
	lastUpdated time.Time
	collector   *Collector
	mu          sync.RWMutex
}

func NewCacheMetrics(cacheType string) *CacheMetrics {
	return &CacheMetrics{
		cacheType: cacheType,
		collector: getCollector(),
	}
}

func (m *CacheMetrics) RecordHit() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hits++
	m.total++
	m.lastUpdated = time.Now()
	m.collector.CacheHits.WithLabelValues(m.cacheType).Inc()
	m.collector.CacheRequests.WithLabelValues(m.cacheType).Inc()
	m.updateHitRatio()
}

func (m *CacheMetrics) RecordMiss() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.misses++
	m.total++
	m.lastUpdated = time.Now()
	m.collector.CacheMisses.WithLabelValues(m.cacheType).Inc()
	m.collector.CacheRequests.WithLabelValues(m.cacheType).Inc()
	m.updateHitRatio()
}

func (m *CacheMetrics) RecordLatency(operation string, duration time.Duration) {
	m.collector.CacheLatency.WithLabelValues(m.cacheType, operation).Observe(duration.Seconds())
}

// updateHitRatio updates the Prometheus hit ratio gauge.
// Must be called while holding the mutex.
func (m *CacheMetrics) updateHitRatio() {
	if m.total > 0 {
		m.collector.CacheHitRatio.WithLabelValues(m.cacheType).Set(float64(m.hits) / float64(m.total))
	}
}

func (m *CacheMetrics) GetStats() ports.CacheStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var hitRatio float64
	if m.total > 0 {
		hitRatio = float64(m.hits) / float64(m.total)
	}

	return ports.CacheStats{
		Hits:        m.hits,
		Misses:      m.misses,
		TotalOps:    m.total,
		HitRatio:    hitRatio,
		LastUpdated: m.lastUpdated,
	}
}

// CacheType returns the backend label used for this tracker
func (m *CacheMetrics) CacheType() string {
	return m.cacheType
}
