// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherlog.app/internal/core/diary"
	"weatherlog.app/internal/core/weather"
	"weatherlog.app/internal/ports"
	"weatherlog.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router           *gin.Engine
	config           ServerConfig
	diaryUseCase     DiaryUseCase
	weatherResolver  WeatherResolver
	weatherIngester  WeatherIngester
	healthChecker    ports.SystemHealthChecker
	metricsCollector MetricsCollector
}

// Use case interfaces that the HTTP adapter depends on
type DiaryUseCase interface {
	CreateDiary(ctx context.Context, date time.Time, text string) (*diary.Entry, error)
	CreateWeatherDiary(ctx context.Context, date time.Time) (*diary.Entry, error)
	ReadDiary(ctx context.Context, date time.Time) ([]*diary.Entry, error)
	ReadDiaries(ctx context.Context, start, end time.Time) ([]*diary.Entry, error)
	UpdateDiary(ctx context.Context, date time.Time, text string) (*diary.Entry, error)
	DeleteDiary(ctx context.Context, date time.Time) (int64, error)
}

type WeatherResolver interface {
	ResolveWeather(ctx context.Context, date time.Time) (*weather.Record, error)
}

// WeatherIngester runs an out-of-schedule ingestion for today
type WeatherIngester interface {
	IngestToday(ctx context.Context) (*weather.Record, error)
}

type MetricsCollector interface {
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config              ServerConfig
	DiaryUseCase        DiaryUseCase
	WeatherResolver     WeatherResolver
	WeatherIngester     WeatherIngester
	SystemHealthChecker ports.SystemHealthChecker
	MetricsCollector    MetricsCollector
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	if err := RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	server := &HTTPServerAdapter{
		router:           router,
		config:           opts.Config,
		diaryUseCase:     opts.DiaryUseCase,
		weatherResolver:  opts.WeatherResolver,
		weatherIngester:  opts.WeatherIngester,
		healthChecker:    opts.SystemHealthChecker,
		metricsCollector: opts.MetricsCollector,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.DiaryUseCase == nil {
		return errors.NewValidationError("diary use case is required")
	}
	if opts.WeatherResolver == nil {
		return errors.NewValidationError("weather resolver is required")
	}
	if opts.WeatherIngester == nil {
		return errors.NewValidationError("weather ingester is required")
	}
	if opts.SystemHealthChecker == nil {
		return errors.NewValidationError("system health checker is required")
	}
	if opts.MetricsCollector == nil {
		return errors.NewValidationError("metrics collector is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	s.router.POST("/create/diary", s.createDiary)
	s.router.POST("/create/weather-diary", s.createWeatherDiary)
	s.router.GET("/read/diary", s.readDiary)
	s.router.GET("/read/diaries", s.readDiaries)
	s.router.PUT("/update/diary", s.updateDiary)
	s.router.DELETE("/delete/diary", s.deleteDiary)

	api := s.router.Group("/api")
	{
		api.GET("/weather", s.getWeather)
		api.POST("/weather/ingest", s.ingestWeather)
		api.GET("/health", s.getHealth)
		api.GET("/metrics", s.getMetrics)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
