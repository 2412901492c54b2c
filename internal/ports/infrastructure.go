package ports

import "time"

// WeatherConfig represents weather provider configuration
type WeatherConfig struct {
	City           string
	BaseURL        string
	Timeout        time.Duration
	CircuitBreaker bool
}

// CacheConfig represents read-through cache configuration
type CacheConfig struct {
	Type string
	TTL  time.Duration
}

// SchedulerConfig represents scheduler configuration
type SchedulerConfig struct {
	Enabled      bool
	DailyAt      string
	StartupDelay time.Duration
	Timezone     string
}

// ConfigProvider exposes the immutable startup configuration
type ConfigProvider interface {
	GetWeatherConfig() WeatherConfig
	GetCacheConfig() CacheConfig
	GetSchedulerConfig() SchedulerConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
