package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherlog.app/internal/ports"
	"weatherlog.app/pkg/errors"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeatherRepositoryAdapter_FindByDate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWeatherRepositoryAdapter(db)
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		record, err := repo.FindByDate(ctx, day(2024, 1, 1))

		assert.Nil(t, record)
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("Found", func(t *testing.T) {
		require.NoError(t, db.Create(&WeatherRecordModel{
			Date:               "2024-01-02",
			Description:        "Snow",
			TemperatureCelsius: -3.5,
		}).Error)

		record, err := repo.FindByDate(ctx, day(2024, 1, 2))

		require.NoError(t, err)
		assert.NotZero(t, record.ID)
		assert.True(t, record.Date.Equal(day(2024, 1, 2)))
		assert.Equal(t, "Snow", record.Description)
		assert.Equal(t, -3.5, record.TemperatureCelsius)
	})

	t.Run("IgnoresTimeOfDay", func(t *testing.T) {
		record, err := repo.FindByDate(ctx, time.Date(2024, 1, 2, 23, 59, 0, 0, time.UTC))

		require.NoError(t, err)
		assert.Equal(t, "Snow", record.Description)
	})
}

func TestWeatherRepositoryAdapter_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("InsertAssignsID", func(t *testing.T) {
		repo := NewWeatherRepositoryAdapter(setupTestDB(t))
		record := &ports.WeatherRecordData{Date: day(2024, 3, 1), Description: "Clear", TemperatureCelsius: 12}

		require.NoError(t, repo.Save(ctx, record))

		assert.NotZero(t, record.ID)
		stored, err := repo.FindByDate(ctx, day(2024, 3, 1))
		require.NoError(t, err)
		assert.Equal(t, record.ID, stored.ID)
	})

	t.Run("UpdateKeepsID", func(t *testing.T) {
		repo := NewWeatherRepositoryAdapter(setupTestDB(t))
		record := &ports.WeatherRecordData{Date: day(2024, 3, 2), Description: "Clear", TemperatureCelsius: 12}
		require.NoError(t, repo.Save(ctx, record))
		id := record.ID

		record.Description = "Rain"
		record.TemperatureCelsius = 8.25
		require.NoError(t, repo.Save(ctx, record))

		stored, err := repo.FindByDate(ctx, day(2024, 3, 2))
		require.NoError(t, err)
		assert.Equal(t, id, stored.ID)
		assert.Equal(t, "Rain", stored.Description)
		assert.Equal(t, 8.25, stored.TemperatureCelsius)
	})

	t.Run("SecondInsertForSameDayUpdatesSingleRow", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewWeatherRepositoryAdapter(db)
		first := &ports.WeatherRecordData{Date: day(2024, 3, 3), Description: "Clouds", TemperatureCelsius: 5}
		second := &ports.WeatherRecordData{Date: day(2024, 3, 3), Description: "Mist", TemperatureCelsius: 4}

		require.NoError(t, repo.Save(ctx, first))
		require.NoError(t, repo.Save(ctx, second))

		var count int64
		require.NoError(t, db.Model(&WeatherRecordModel{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
		assert.Equal(t, first.ID, second.ID)

		stored, err := repo.FindByDate(ctx, day(2024, 3, 3))
		require.NoError(t, err)
		assert.Equal(t, "Mist", stored.Description)
	})

	t.Run("UpdateUnknownID", func(t *testing.T) {
		repo := NewWeatherRepositoryAdapter(setupTestDB(t))

		err := repo.Save(ctx, &ports.WeatherRecordData{ID: 999, Date: day(2024, 3, 4), Description: "Clear"})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("NilRecord", func(t *testing.T) {
		repo := NewWeatherRepositoryAdapter(setupTestDB(t))

		err := repo.Save(ctx, nil)

		assert.True(t, errors.IsValidationError(err))
	})
}
