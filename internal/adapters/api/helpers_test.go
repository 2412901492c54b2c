package api

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherlog.app/internal/core/diary"
	"weatherlog.app/internal/core/weather"
	"weatherlog.app/internal/mocks"
	"weatherlog.app/internal/ports"
)

type stubHealthChecker struct {
	results map[string]ports.HealthStatus
}

func (s stubHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	return s.results
}

type stubMetricsCollector struct {
	metrics map[string]interface{}
	err     error
}

func (s stubMetricsCollector) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	return s.metrics, s.err
}

type ingesterFunc func(ctx context.Context) (*weather.Record, error)

func (f ingesterFunc) IngestToday(ctx context.Context) (*weather.Record, error) {
	return f(ctx)
}

// testServer wires real use cases over mocked ports
type testServer struct {
	router   *gin.Engine
	store    *mocks.WeatherStore
	provider *mocks.WeatherProvider
	repo     *mocks.DiaryRepository
	ingester ingesterFunc
}

func quietLogger(t *testing.T) *mocks.Logger {
	logger := mocks.NewLogger(t)
	for _, level := range []string{"Debug", "Info", "Warn", "Error"} {
		logger.On(level, mock.Anything, mock.Anything).Maybe()
	}
	return logger
}

func fixedClock() time.Time {
	return time.Date(2024, 12, 31, 9, 30, 0, 0, time.UTC)
}

func newTestServer(t *testing.T, opts ...func(*ServerOptions)) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ts := &testServer{
		store:    mocks.NewWeatherStore(t),
		provider: mocks.NewWeatherProvider(t),
		repo:     mocks.NewDiaryRepository(t),
	}
	logger := quietLogger(t)

	resolver, err := weather.NewResolver(weather.ResolverDependencies{
		Store:    ts.store,
		Provider: ts.provider,
		Logger:   logger,
	})
	require.NoError(t, err)

	diaryUseCase, err := diary.NewUseCase(diary.UseCaseDependencies{
		Repository: ts.repo,
		Resolver:   resolver,
		Logger:     logger,
		Clock:      fixedClock,
	})
	require.NoError(t, err)

	options := ServerOptions{
		Config:          ServerConfig{Port: 8080},
		DiaryUseCase:    diaryUseCase,
		WeatherResolver: resolver,
		WeatherIngester: ingesterFunc(func(ctx context.Context) (*weather.Record, error) {
			return ts.ingester(ctx)
		}),
		SystemHealthChecker: stubHealthChecker{results: map[string]ports.HealthStatus{
			"database": {Component: "database", Status: "healthy"},
		}},
		MetricsCollector: stubMetricsCollector{metrics: map[string]interface{}{}},
	}
	for _, opt := range opts {
		opt(&options)
	}

	server, err := NewHTTPServerAdapter(options)
	require.NoError(t, err)
	ts.router = server.GetRouter()
	return ts
}

func (ts *testServer) do(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func storedWeather(date time.Time, description string, temp float64) *ports.WeatherRecordData {
	return &ports.WeatherRecordData{ID: 7, Date: date, Description: description, TemperatureCelsius: temp}
}

