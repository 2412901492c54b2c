package external

import (
	"context"
	"time"

	"weatherlog.app/internal/ports"
)

// WeatherProviderLoggingDecorator decorates weather providers with structured logging
type WeatherProviderLoggingDecorator struct {
	provider ports.WeatherProvider
	logger   ports.Logger
}

// NewWeatherProviderLoggingDecorator creates a new logging decorator for weather providers
func NewWeatherProviderLoggingDecorator(provider ports.WeatherProvider, logger ports.Logger) ports.WeatherProvider {
	return &WeatherProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// FetchCurrentWeather wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) FetchCurrentWeather(ctx context.Context) (*ports.ProviderPayload, error) {
	providerName := d.provider.ProviderName()

	d.logger.Info("Weather API request started",
		ports.F("provider", providerName),
		ports.F("event", "request"))

	startTime := time.Now()
	payload, err := d.provider.FetchCurrentWeather(ctx)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Weather API request failed",
			ports.F("provider", providerName),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", providerName),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("location", payload.Location),
		ports.F("condition", payload.Condition),
		ports.F("detail", payload.Detail),
		ports.F("temperature", payload.TemperatureCelsius),
		ports.F("humidity", payload.Humidity))

	return payload, nil
}

// ProviderName returns the name of the wrapped provider with logging indication
func (d *WeatherProviderLoggingDecorator) ProviderName() string {
	return "logged(" + d.provider.ProviderName() + ")"
}
