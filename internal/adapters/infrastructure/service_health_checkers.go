package infrastructure

import (
	"context"

	"weatherlog.app/internal/ports"
)

// Pinger is implemented by cache backends that can verify connectivity
type Pinger interface {
	Ping(ctx context.Context) error
}

// CacheHealthChecker implements read-through cache health checking
type CacheHealthChecker struct {
	cacheType string
	cache     ports.CacheProvider
}

// NewCacheHealthChecker creates a cache health checker; cache may be nil when caching is disabled
func NewCacheHealthChecker(cacheType string, cache ports.CacheProvider) *CacheHealthChecker {
	return &CacheHealthChecker{cacheType: cacheType, cache: cache}
}

// Check pings the cache backend when it supports it.
// A broken cache only degrades the service since reads fall back to the database.
func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"type":    c.cacheType,
			"enabled": c.cache != nil,
		},
	}

	if pinger, ok := c.cache.(Pinger); ok {
		if err := pinger.Ping(ctx); err != nil {
			status.Status = statusDegraded
			status.Error = err.Error()
		}
	}

	return status
}

// BreakerStater is implemented by providers guarded by a circuit breaker
type BreakerStater interface {
	State() string
}

// WeatherProviderHealthChecker reports the configured weather provider without calling it
type WeatherProviderHealthChecker struct {
	provider ports.WeatherProvider
	breaker  BreakerStater
}

// NewWeatherProviderHealthChecker creates a new weather provider health checker.
// breaker may be nil when the circuit breaker is disabled.
func NewWeatherProviderHealthChecker(provider ports.WeatherProvider, breaker BreakerStater) *WeatherProviderHealthChecker {
	return &WeatherProviderHealthChecker{provider: provider, breaker: breaker}
}

// Check reports the provider name and, when present, the breaker state
func (w *WeatherProviderHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherProvider",
		Status:    statusHealthy,
		Details:   make(map[string]interface{}),
	}

	if w.provider == nil {
		status.Status = statusUnhealthy
		status.Error = "weather provider is not available"
		return status
	}
	status.Details["provider"] = w.provider.ProviderName()

	if w.breaker != nil {
		state := w.breaker.State()
		status.Details["circuit"] = state
		if state == "open" {
			status.Status = statusDegraded
			status.Error = "circuit breaker is open"
		}
	}

	return status
}
