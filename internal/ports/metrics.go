package ports

import "time"

// WeatherStats is a point-in-time view of provider and ingestion activity
type WeatherStats struct {
	ProviderCalls map[string]int64 `json:"provider_calls"`
	Ingestions    map[string]int64 `json:"ingestions"`
	LastIngestion time.Time        `json:"last_ingestion,omitempty"`
}

// WeatherMetrics records provider calls and ingestion runs
type WeatherMetrics interface {
	RecordProviderCall(provider, outcome string, duration time.Duration)
	RecordIngestion(trigger, outcome string)
	GetWeatherStats() WeatherStats
}
