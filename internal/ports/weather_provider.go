package ports

import (
	"context"
	"time"
)

// ProviderPayload is the typed form of one current-conditions response.
// Condition and TemperatureCelsius are always populated by a provider.
type ProviderPayload struct {
	Condition          string
	Detail             string
	TemperatureCelsius float64
	Humidity           float64
	Location           string
	ObservedAt         time.Time
}

// WeatherProvider performs exactly one outbound call per FetchCurrentWeather
type WeatherProvider interface {
	FetchCurrentWeather(ctx context.Context) (*ProviderPayload, error)
	ProviderName() string
}

// WeatherRecordData represents a persisted weather record
type WeatherRecordData struct {
	ID                 uint
	Date               time.Time
	Description        string
	TemperatureCelsius float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// WeatherStore is the date-keyed weather cache store.
// FindByDate returns a NotFound app error when no record exists for the day.
// Save inserts when ID is zero (and assigns it), otherwise updates in place.
type WeatherStore interface {
	FindByDate(ctx context.Context, date time.Time) (*WeatherRecordData, error)
	Save(ctx context.Context, record *WeatherRecordData) error
}
