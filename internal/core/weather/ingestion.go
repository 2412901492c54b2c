package weather

import (
	"context"
	"time"

	"weatherlog.app/internal/ports"
	"weatherlog.app/pkg/calendar"
	"weatherlog.app/pkg/errors"
)

// IngestionService refreshes the stored weather for a day from the provider
type IngestionService struct {
	provider ports.WeatherProvider
	store    ports.WeatherStore
	logger   ports.Logger
	clock    func() time.Time
	location *time.Location
}

type IngestionDependencies struct {
	Provider ports.WeatherProvider
	Store    ports.WeatherStore
	Logger   ports.Logger

	// Clock defaults to time.Now and Location to time.Local.
	Clock    func() time.Time
	Location *time.Location
}

func NewIngestionService(deps IngestionDependencies) (*IngestionService, error) {
	if deps.Provider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}
	if deps.Store == nil {
		return nil, errors.NewValidationError("weather store is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	location := deps.Location
	if location == nil {
		location = time.Local
	}

	return &IngestionService{
		provider: deps.Provider,
		store:    deps.Store,
		logger:   deps.Logger,
		clock:    clock,
		location: location,
	}, nil
}

// Today returns the current civil day in the service's location
func (s *IngestionService) Today() time.Time {
	return calendar.Today(s.clock(), s.location)
}

// IngestToday fetches current conditions and upserts them for today
func (s *IngestionService) IngestToday(ctx context.Context) (*Record, error) {
	return s.IngestDate(ctx, s.Today())
}

// IngestDate always fetches fresh conditions, then updates the existing row
// for date in place or inserts a new one. Nothing is written if the fetch fails.
func (s *IngestionService) IngestDate(ctx context.Context, date time.Time) (*Record, error) {
	day := calendar.Day(date)

	payload, err := s.provider.FetchCurrentWeather(ctx)
	if err != nil {
		return nil, err
	}

	record, err := NewRecordFromPayload(day, payload)
	if err != nil {
		return nil, err
	}

	data, err := s.store.FindByDate(ctx, day)
	switch {
	case err == nil && data != nil:
		data.Description = record.Description
		data.TemperatureCelsius = record.TemperatureCelsius
	case err == nil || errors.IsNotFoundError(err):
		data = record.toData()
	default:
		return nil, err
	}

	if err := s.store.Save(ctx, data); err != nil {
		return nil, err
	}
	record.ID = data.ID

	s.logger.Info("Weather ingested",
		ports.F("date", record.DateString()),
		ports.F("id", record.ID),
		ports.F("description", record.Description),
		ports.F("temperature", record.TemperatureCelsius))

	return record, nil
}
