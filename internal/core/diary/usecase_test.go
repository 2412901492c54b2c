package diary

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherlog.app/internal/core/weather"
	mocks "weatherlog.app/internal/mocks"
	"weatherlog.app/internal/ports"
	"weatherlog.app/pkg/calendar"
	"weatherlog.app/pkg/errors"
)

type resolverFunc func(ctx context.Context, date time.Time) (*weather.Record, error)

func (f resolverFunc) ResolveWeather(ctx context.Context, date time.Time) (*weather.Record, error) {
	return f(ctx, date)
}

func staticWeather(description string, temp float64) resolverFunc {
	return func(_ context.Context, date time.Time) (*weather.Record, error) {
		return &weather.Record{Date: date, Description: description, TemperatureCelsius: temp}, nil
	}
}

func quietLogger(t *testing.T) *mocks.Logger {
	logger := mocks.NewLogger(t)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	return logger
}

// memoryRepo mirrors the ordering rules of the database repository.
type memoryRepo struct {
	mu   sync.Mutex
	rows []ports.DiaryEntryData
}

func (r *memoryRepo) Create(_ context.Context, entry *ports.DiaryEntryData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, *entry)
	return nil
}

func (r *memoryRepo) FindByDate(ctx context.Context, date time.Time) ([]*ports.DiaryEntryData, error) {
	return r.FindBetween(ctx, date, date)
}

func (r *memoryRepo) FindBetween(_ context.Context, start, end time.Time) ([]*ports.DiaryEntryData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*ports.DiaryEntryData
	for i := range r.rows {
		row := r.rows[i]
		if !row.Date.Before(start) && !row.Date.After(end) {
			out = append(out, &row)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memoryRepo) UpdateText(_ context.Context, id string, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows[i].Text = text
			return nil
		}
	}
	return errors.NewNotFoundError("diary not found")
}

func (r *memoryRepo) DeleteByDate(_ context.Context, date time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.rows[:0]
	var deleted int64
	for _, row := range r.rows {
		if row.Date.Equal(date) {
			deleted++
			continue
		}
		kept = append(kept, row)
	}
	r.rows = kept
	return deleted, nil
}

// tickingClock advances one second per call so creation order is observable.
func tickingClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	now := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Second)
		return now
	}
}

func newTestUseCase(t *testing.T, repo ports.DiaryRepository, resolver WeatherResolver) *UseCase {
	uc, err := NewUseCase(UseCaseDependencies{
		Repository: repo,
		Resolver:   resolver,
		Logger:     quietLogger(t),
		Clock:      tickingClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)
	return uc
}

func day(s string) time.Time {
	d, err := calendar.Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestNewUseCase_RequiresDependencies(t *testing.T) {
	_, err := NewUseCase(UseCaseDependencies{})
	assert.True(t, errors.IsValidationError(err))

	_, err = NewUseCase(UseCaseDependencies{Repository: &memoryRepo{}})
	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_CreateDiary(t *testing.T) {
	repo := mocks.NewDiaryRepository(t)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(d *ports.DiaryEntryData) bool {
		return d.Text == "first snow" &&
			d.WeatherDescription == "Clear" &&
			d.TemperatureCelsius == 22.5 &&
			calendar.Format(d.Date) == "2024-12-31" &&
			d.ID != ""
	})).Return(nil).Once()

	uc := newTestUseCase(t, repo, staticWeather("Clear", 22.5))

	entry, err := uc.CreateDiary(context.Background(), day("2024-12-31"), "first snow")

	require.NoError(t, err)
	assert.Equal(t, "Clear", entry.WeatherDescription)
	assert.Equal(t, 22.5, entry.TemperatureCelsius)
}

func TestUseCase_CreateDiary_ResolutionFailure(t *testing.T) {
	repo := mocks.NewDiaryRepository(t)
	providerErr := errors.NewProviderUnavailableError("weather provider unreachable", nil)
	failing := resolverFunc(func(context.Context, time.Time) (*weather.Record, error) {
		return nil, providerErr
	})

	uc := newTestUseCase(t, repo, failing)

	entry, err := uc.CreateDiary(context.Background(), day("2024-12-31"), "note")

	assert.Nil(t, entry)
	assert.ErrorIs(t, err, providerErr)
	assert.True(t, errors.IsProviderError(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUseCase_CreateDiary_BlankText(t *testing.T) {
	repo := mocks.NewDiaryRepository(t)
	uc := newTestUseCase(t, repo, staticWeather("Clear", 1))

	_, err := uc.CreateDiary(context.Background(), day("2024-12-31"), "   ")

	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_CreateDiary_StorageFailure(t *testing.T) {
	repo := mocks.NewDiaryRepository(t)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.NewDatabaseError("insert failed", fmt.Errorf("locked"))).Once()
	uc := newTestUseCase(t, repo, staticWeather("Clear", 1))

	_, err := uc.CreateDiary(context.Background(), day("2024-12-31"), "note")

	assert.True(t, errors.IsDatabaseError(err))
}

func TestUseCase_CreateWeatherDiary(t *testing.T) {
	repo := &memoryRepo{}
	uc := newTestUseCase(t, repo, staticWeather("Clear", 22.5))

	entry, err := uc.CreateWeatherDiary(context.Background(), day("2024-12-31"))

	require.NoError(t, err)
	assert.Equal(t, "Auto-collected weather: Clear, 22.5°C", entry.Text)

	entries, err := uc.ReadDiary(context.Background(), day("2024-12-31"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)
}

func TestUseCase_ReadDiaries(t *testing.T) {
	repo := &memoryRepo{}
	uc := newTestUseCase(t, repo, staticWeather("Clouds", 5))
	ctx := context.Background()

	for _, d := range []string{"2024-01-03", "2024-01-01", "2024-01-02", "2024-01-01", "2024-01-05"} {
		_, err := uc.CreateDiary(ctx, day(d), "entry on "+d)
		require.NoError(t, err)
	}

	entries, err := uc.ReadDiaries(ctx, day("2024-01-01"), day("2024-01-03"))
	require.NoError(t, err)

	var dates []string
	for _, e := range entries {
		dates = append(dates, e.DateString())
	}
	assert.Equal(t, []string{"2024-01-01", "2024-01-01", "2024-01-02", "2024-01-03"}, dates)

	single, err := uc.ReadDiaries(ctx, day("2024-01-05"), day("2024-01-05"))
	require.NoError(t, err)
	assert.Len(t, single, 1)

	_, err = uc.ReadDiaries(ctx, day("2024-01-05"), day("2024-01-01"))
	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_ReadDiary_Empty(t *testing.T) {
	uc := newTestUseCase(t, &memoryRepo{}, staticWeather("Clear", 1))

	entries, err := uc.ReadDiary(context.Background(), day("2030-01-01"))

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUseCase_UpdateDiary_FirstEntryWins(t *testing.T) {
	repo := &memoryRepo{}
	uc := newTestUseCase(t, repo, staticWeather("Clear", 22.5))
	ctx := context.Background()

	first, err := uc.CreateDiary(ctx, day("2024-12-31"), "morning")
	require.NoError(t, err)
	second, err := uc.CreateDiary(ctx, day("2024-12-31"), "evening")
	require.NoError(t, err)

	updated, err := uc.UpdateDiary(ctx, day("2024-12-31"), "morning, revised")
	require.NoError(t, err)
	assert.Equal(t, first.ID, updated.ID)
	assert.Equal(t, "Clear", updated.WeatherDescription)

	entries, err := uc.ReadDiary(ctx, day("2024-12-31"))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "morning, revised", entries[0].Text)
	assert.Equal(t, second.ID, entries[1].ID)
	assert.Equal(t, "evening", entries[1].Text)
}

func TestUseCase_UpdateDiary_NoEntry(t *testing.T) {
	repo := mocks.NewDiaryRepository(t)
	repo.On("FindByDate", mock.Anything, day("2024-02-29")).Return([]*ports.DiaryEntryData{}, nil).Once()
	uc := newTestUseCase(t, repo, staticWeather("Clear", 1))

	_, err := uc.UpdateDiary(context.Background(), day("2024-02-29"), "text")

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Contains(t, err.Error(), "no diary entry exists for date 2024-02-29")
}

func TestUseCase_DeleteDiary(t *testing.T) {
	repo := &memoryRepo{}
	uc := newTestUseCase(t, repo, staticWeather("Clear", 1))
	ctx := context.Background()

	for _, d := range []string{"2024-05-01", "2024-05-01", "2024-05-02"} {
		_, err := uc.CreateDiary(ctx, day(d), "x")
		require.NoError(t, err)
	}

	deleted, err := uc.DeleteDiary(ctx, day("2024-05-01"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	deleted, err = uc.DeleteDiary(ctx, day("2024-05-01"))
	require.NoError(t, err)
	assert.Zero(t, deleted)

	remaining, err := uc.ReadDiaries(ctx, day("2024-05-01"), day("2024-05-31"))
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

// weatherStore is a minimal date-keyed store for wiring a real resolver.
type weatherStore struct {
	rows map[time.Time]ports.WeatherRecordData
}

func (s *weatherStore) FindByDate(_ context.Context, date time.Time) (*ports.WeatherRecordData, error) {
	row, ok := s.rows[date]
	if !ok {
		return nil, errors.NewNotFoundError("weather record not found")
	}
	return &row, nil
}

func (s *weatherStore) Save(_ context.Context, record *ports.WeatherRecordData) error {
	if record.ID == 0 {
		record.ID = uint(len(s.rows) + 1)
	}
	s.rows[record.Date] = *record
	return nil
}

func TestDiarySnapshot_IndependentOfWeatherRecord(t *testing.T) {
	ctx := context.Background()
	d := day("2024-12-31")
	store := &weatherStore{rows: map[time.Time]ports.WeatherRecordData{}}
	require.NoError(t, store.Save(ctx, &ports.WeatherRecordData{Date: d, Description: "Clear", TemperatureCelsius: 22.5}))

	provider := mocks.NewWeatherProvider(t)
	resolver, err := weather.NewResolver(weather.ResolverDependencies{Store: store, Provider: provider, Logger: quietLogger(t)})
	require.NoError(t, err)

	repo := &memoryRepo{}
	uc := newTestUseCase(t, repo, resolver)

	_, err = uc.CreateDiary(ctx, d, "quiet day")
	require.NoError(t, err)

	row := store.rows[d]
	row.Description = "Thunderstorm"
	row.TemperatureCelsius = -3
	store.rows[d] = row

	entries, err := uc.ReadDiary(ctx, d)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Clear", entries[0].WeatherDescription)
	assert.Equal(t, 22.5, entries[0].TemperatureCelsius)

	delete(store.rows, d)
	entries, err = uc.ReadDiary(ctx, d)
	require.NoError(t, err)
	assert.Equal(t, "Clear", entries[0].WeatherDescription)
}
