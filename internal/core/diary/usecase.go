package diary

import (
	"context"
	"fmt"
	"time"

	"weatherlog.app/internal/core/weather"
	"weatherlog.app/internal/ports"
	"weatherlog.app/pkg/calendar"
	"weatherlog.app/pkg/errors"
	"weatherlog.app/pkg/validation"
)

// WeatherResolver supplies the weather snapshot stamped on new entries
type WeatherResolver interface {
	ResolveWeather(ctx context.Context, date time.Time) (*weather.Record, error)
}

type UseCase struct {
	repo     ports.DiaryRepository
	resolver WeatherResolver
	logger   ports.Logger
	clock    func() time.Time
}

type UseCaseDependencies struct {
	Repository ports.DiaryRepository
	Resolver   WeatherResolver
	Logger     ports.Logger
	Clock      func() time.Time
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Repository == nil {
		return nil, errors.NewValidationError("diary repository is required")
	}
	if deps.Resolver == nil {
		return nil, errors.NewValidationError("weather resolver is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	return &UseCase{
		repo:     deps.Repository,
		resolver: deps.Resolver,
		logger:   deps.Logger,
		clock:    clock,
	}, nil
}

// CreateDiary resolves the day's weather and saves a new entry with it.
// A resolution failure fails the request; no placeholder weather is used.
func (uc *UseCase) CreateDiary(ctx context.Context, date time.Time, text string) (*Entry, error) {
	if !validation.IsNotEmpty(text) {
		return nil, errors.NewValidationError("text is required")
	}
	day := calendar.Day(date)

	w, err := uc.resolver.ResolveWeather(ctx, day)
	if err != nil {
		uc.logger.Error("Failed to resolve weather for diary",
			ports.F("date", calendar.Format(day)),
			ports.F("error", err))
		return nil, fmt.Errorf("resolve weather: %w", err)
	}

	entry := NewEntry(day, text, w, uc.clock().UTC())
	if err := entry.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid diary entry: " + err.Error())
	}

	if err := uc.repo.Create(ctx, toData(entry)); err != nil {
		return nil, fmt.Errorf("save diary: %w", err)
	}

	uc.logger.Debug("Diary created",
		ports.F("id", entry.ID),
		ports.F("date", entry.DateString()),
		ports.F("weather", entry.WeatherDescription))
	return entry, nil
}

// CreateWeatherDiary creates an entry whose text describes the day's weather
func (uc *UseCase) CreateWeatherDiary(ctx context.Context, date time.Time) (*Entry, error) {
	day := calendar.Day(date)

	w, err := uc.resolver.ResolveWeather(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("resolve weather: %w", err)
	}

	entry := NewEntry(day, WeatherText(w), w, uc.clock().UTC())
	if err := uc.repo.Create(ctx, toData(entry)); err != nil {
		return nil, fmt.Errorf("save diary: %w", err)
	}

	uc.logger.Debug("Weather diary created", ports.F("id", entry.ID), ports.F("date", entry.DateString()))
	return entry, nil
}

func (uc *UseCase) ReadDiary(ctx context.Context, date time.Time) ([]*Entry, error) {
	rows, err := uc.repo.FindByDate(ctx, calendar.Day(date))
	if err != nil {
		return nil, fmt.Errorf("find diaries: %w", err)
	}
	return fromDataSlice(rows), nil
}

// ReadDiaries lists entries in [start, end], both days inclusive
func (uc *UseCase) ReadDiaries(ctx context.Context, start, end time.Time) ([]*Entry, error) {
	from, to := calendar.Day(start), calendar.Day(end)
	if from.After(to) {
		return nil, errors.NewValidationError(fmt.Sprintf(
			"start date %s is after end date %s", calendar.Format(from), calendar.Format(to)))
	}

	rows, err := uc.repo.FindBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("find diaries: %w", err)
	}
	return fromDataSlice(rows), nil
}

// UpdateDiary replaces the text of the first entry written for date
func (uc *UseCase) UpdateDiary(ctx context.Context, date time.Time, text string) (*Entry, error) {
	if !validation.IsNotEmpty(text) {
		return nil, errors.NewValidationError("text is required")
	}
	day := calendar.Day(date)

	rows, err := uc.repo.FindByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("find diaries: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.NewNoSuchDiaryForDateError(calendar.Format(day))
	}

	entry := fromData(rows[0])
	if err := uc.repo.UpdateText(ctx, entry.ID, text); err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNoSuchDiaryForDateError(calendar.Format(day))
		}
		return nil, fmt.Errorf("update diary: %w", err)
	}
	entry.Text = text
	entry.UpdatedAt = uc.clock().UTC()

	uc.logger.Debug("Diary updated", ports.F("id", entry.ID), ports.F("date", entry.DateString()))
	return entry, nil
}

// DeleteDiary removes every entry for date and reports how many were removed
func (uc *UseCase) DeleteDiary(ctx context.Context, date time.Time) (int64, error) {
	day := calendar.Day(date)

	deleted, err := uc.repo.DeleteByDate(ctx, day)
	if err != nil {
		return 0, fmt.Errorf("delete diaries: %w", err)
	}

	uc.logger.Debug("Diaries deleted", ports.F("date", calendar.Format(day)), ports.F("count", deleted))
	return deleted, nil
}

func toData(e *Entry) *ports.DiaryEntryData {
	return &ports.DiaryEntryData{
		ID:                 e.ID,
		Date:               e.Date,
		Text:               e.Text,
		WeatherDescription: e.WeatherDescription,
		TemperatureCelsius: e.TemperatureCelsius,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func fromData(d *ports.DiaryEntryData) *Entry {
	return &Entry{
		ID:                 d.ID,
		Date:               calendar.Day(d.Date),
		Text:               d.Text,
		WeatherDescription: d.WeatherDescription,
		TemperatureCelsius: d.TemperatureCelsius,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

func fromDataSlice(rows []*ports.DiaryEntryData) []*Entry {
	entries := make([]*Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, fromData(row))
	}
	return entries
}
