package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"weatherlog.app/internal/core/weather"
	"weatherlog.app/internal/ports"
	"weatherlog.app/pkg/errors"
)

func TestWeatherHandler_GetWeather_FromStore(t *testing.T) {
	ts := newTestServer(t)
	ts.store.On("FindByDate", mock.Anything, day(2024, 12, 31)).
		Return(storedWeather(day(2024, 12, 31), "Snow", -2.5), nil)

	w := ts.do(http.MethodGet, "/api/weather?date=2024-12-31")

	assert.Equal(t, http.StatusOK, w.Code)
	response := decode[WeatherResponse](t, w)
	assert.Equal(t, "2024-12-31", response.Date)
	assert.Equal(t, "Snow", response.Weather)
	assert.Equal(t, -2.5, response.Temperature)
	assert.True(t, response.Stored)
	ts.provider.AssertNotCalled(t, "FetchCurrentWeather", mock.Anything)
}

func TestWeatherHandler_GetWeather_FetchOnMissIsNotStored(t *testing.T) {
	ts := newTestServer(t)
	ts.store.On("FindByDate", mock.Anything, day(2024, 12, 31)).
		Return(nil, errors.NewNotFoundError("weather record not found"))
	ts.provider.On("FetchCurrentWeather", mock.Anything).
		Return(&ports.ProviderPayload{Condition: "Clear", TemperatureCelsius: 22.5}, nil).Once()

	w := ts.do(http.MethodGet, "/api/weather?date=2024-12-31")

	assert.Equal(t, http.StatusOK, w.Code)
	response := decode[WeatherResponse](t, w)
	assert.Equal(t, "Clear", response.Weather)
	assert.Equal(t, 22.5, response.Temperature)
	assert.False(t, response.Stored)
	ts.store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestWeatherHandler_GetWeather_ProviderFailure(t *testing.T) {
	ts := newTestServer(t)
	ts.store.On("FindByDate", mock.Anything, mock.Anything).
		Return(nil, errors.NewNotFoundError("weather record not found"))
	ts.provider.On("FetchCurrentWeather", mock.Anything).
		Return(nil, errors.NewProviderTimeoutError("timed out", nil))

	w := ts.do(http.MethodGet, "/api/weather?date=2024-12-31")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "PROVIDER_TIMEOUT", decode[ErrorResponse](t, w).Code)
}

func TestWeatherHandler_GetWeather_InvalidDate(t *testing.T) {
	tests := []struct {
		name   string
		target string
		errMsg string
	}{
		{"Missing", "/api/weather", "date is required"},
		{"WrongFormat", "/api/weather?date=31-12-2024", "date must be a date in YYYY-MM-DD format"},
		{"NotACalendarDay", "/api/weather?date=2023-02-29", "date must be a date in YYYY-MM-DD format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)

			w := ts.do(http.MethodGet, tt.target)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.errMsg, decode[ErrorResponse](t, w).Error)
		})
	}
}

func TestWeatherHandler_IngestWeather(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ts := newTestServer(t)
		ts.ingester = func(ctx context.Context) (*weather.Record, error) {
			return &weather.Record{ID: 3, Date: day(2024, 12, 31), Description: "Clouds", TemperatureCelsius: 4}, nil
		}

		w := ts.do(http.MethodPost, "/api/weather/ingest")

		assert.Equal(t, http.StatusOK, w.Code)
		response := decode[WeatherResponse](t, w)
		assert.Equal(t, "Clouds", response.Weather)
		assert.True(t, response.Stored)
	})

	t.Run("Failure", func(t *testing.T) {
		ts := newTestServer(t)
		ts.ingester = func(ctx context.Context) (*weather.Record, error) {
			return nil, errors.NewProviderUnavailableError("status 502", nil)
		}

		w := ts.do(http.MethodPost, "/api/weather/ingest")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
