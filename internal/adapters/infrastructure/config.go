package infrastructure

import (
	"weatherlog.app/internal/config"
	"weatherlog.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetWeatherConfig returns weather configuration without the API key
func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	return ports.WeatherConfig{
		City:           c.config.Weather.City,
		BaseURL:        c.config.Weather.BaseURL,
		Timeout:        c.config.Weather.Timeout(),
		CircuitBreaker: c.config.Weather.CircuitBreakerEnabled,
	}
}

// GetCacheConfig returns cache configuration
func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	return ports.CacheConfig{
		Type: c.config.Cache.Type.String(),
		TTL:  c.config.Cache.TTL(),
	}
}

// GetSchedulerConfig returns scheduler configuration
func (c *ConfigProviderAdapter) GetSchedulerConfig() ports.SchedulerConfig {
	return ports.SchedulerConfig{
		Enabled:      c.config.Scheduler.Enabled,
		DailyAt:      c.config.Scheduler.DailyAt,
		StartupDelay: c.config.Scheduler.StartupDelay(),
		Timezone:     c.config.Scheduler.Timezone,
	}
}
