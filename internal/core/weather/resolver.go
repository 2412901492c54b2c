package weather

import (
	"context"
	"time"

	"weatherlog.app/internal/ports"
	"weatherlog.app/pkg/calendar"
	"weatherlog.app/pkg/errors"
)

// Resolver answers "what was the weather on this day" from the store first
// and falls back to a single provider call on a miss. It never writes.
type Resolver struct {
	store    ports.WeatherStore
	provider ports.WeatherProvider
	logger   ports.Logger
}

type ResolverDependencies struct {
	Store    ports.WeatherStore
	Provider ports.WeatherProvider
	Logger   ports.Logger
}

func NewResolver(deps ResolverDependencies) (*Resolver, error) {
	if deps.Store == nil {
		return nil, errors.NewValidationError("weather store is required")
	}
	if deps.Provider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &Resolver{
		store:    deps.Store,
		provider: deps.Provider,
		logger:   deps.Logger,
	}, nil
}

// ResolveWeather returns the stored record for date when one exists, however old.
// Otherwise it fetches current conditions and returns an unsaved record.
func (r *Resolver) ResolveWeather(ctx context.Context, date time.Time) (*Record, error) {
	day := calendar.Day(date)

	cached, err := r.store.FindByDate(ctx, day)
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, err
	}
	if err == nil && cached != nil {
		r.logger.Debug("Weather found in store", ports.F("date", calendar.Format(day)))
		return recordFromData(cached), nil
	}

	r.logger.Debug("Weather not stored, fetching from provider",
		ports.F("date", calendar.Format(day)),
		ports.F("provider", r.provider.ProviderName()))

	payload, err := r.provider.FetchCurrentWeather(ctx)
	if err != nil {
		return nil, err
	}

	return NewRecordFromPayload(day, payload)
}
