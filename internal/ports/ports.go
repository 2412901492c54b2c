package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Weather
	WeatherProvider WeatherProvider
	WeatherStore    WeatherStore

	// Diary
	DiaryRepository DiaryRepository

	// Metrics
	CacheMetrics   CacheMetrics
	WeatherMetrics WeatherMetrics

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Database       interface{}
}
