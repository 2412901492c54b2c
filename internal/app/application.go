package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatherlog.app/internal/adapters/api"
	"weatherlog.app/internal/adapters/infrastructure"
	"weatherlog.app/internal/config"
	"weatherlog.app/internal/core/diary"
	"weatherlog.app/internal/core/weather"
	"weatherlog.app/internal/ports"
	"weatherlog.app/internal/scheduler"
)

type Application struct {
	config *config.Config
	clock  func() time.Time

	// Use Cases
	resolver     *weather.Resolver
	ingestion    *weather.IngestionService
	diaryUseCase *diary.UseCase
	scheduler    *scheduler.Scheduler

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps  *DependencyContainer
	ports *ports.ApplicationPorts
}

// Options tweaks application wiring; the zero value is the production setup
type Options struct {
	// Clock defaults to time.Now.
	Clock func() time.Time
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	return NewApplicationWithConfig(cfg, Options{})
}

// NewApplicationWithConfig wires the application from an already validated configuration
func NewApplicationWithConfig(cfg *config.Config, opts Options) (*Application, error) {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	app := &Application{
		config: cfg,
		clock:  clock,
	}

	if err := app.initializePorts(); err != nil {
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	if err := app.initializeUseCases(); err != nil {
		_ = app.deps.Cleanup()
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		_ = app.deps.Cleanup()
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializePorts() error {
	slog.Info("Initializing application ports...")

	deps, err := NewDependencyContainer(a.config)
	if err != nil {
		return fmt.Errorf("create dependency container: %w", err)
	}

	a.deps = deps
	a.ports = deps.ApplicationPorts()
	slog.Info("Application ports initialized successfully")
	return nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	location, err := a.config.Scheduler.Location()
	if err != nil {
		return err
	}

	resolver, err := weather.NewResolver(weather.ResolverDependencies{
		Store:    a.ports.WeatherStore,
		Provider: a.ports.WeatherProvider,
		Logger:   a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create weather resolver: %w", err)
	}
	a.resolver = resolver

	ingestion, err := weather.NewIngestionService(weather.IngestionDependencies{
		Provider: a.ports.WeatherProvider,
		Store:    a.ports.WeatherStore,
		Logger:   a.ports.Logger,
		Clock:    a.clock,
		Location: location,
	})
	if err != nil {
		return fmt.Errorf("create weather ingestion service: %w", err)
	}
	a.ingestion = ingestion

	diaryUseCase, err := diary.NewUseCase(diary.UseCaseDependencies{
		Repository: a.ports.DiaryRepository,
		Resolver:   a.resolver,
		Logger:     a.ports.Logger,
		Clock:      a.clock,
	})
	if err != nil {
		return fmt.Errorf("create diary use case: %w", err)
	}
	a.diaryUseCase = diaryUseCase

	sched, err := scheduler.New(scheduler.Params{
		Ingester:     a.ingestion,
		Logger:       a.ports.Logger,
		Metrics:      a.ports.WeatherMetrics,
		Location:     location,
		DailyAt:      a.config.Scheduler.DailyAt,
		StartupDelay: a.config.Scheduler.StartupDelay(),
	})
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}
	a.scheduler = sched

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	metricsCollector := infrastructure.NewMetricsCollectorAdapter(infrastructure.MetricsCollectorConfig{
		WeatherMetrics: a.ports.WeatherMetrics,
		CacheMetrics:   a.ports.CacheMetrics,
	})

	systemHealthChecker := infrastructure.NewSystemHealthChecker(a.deps.HealthCheckers())

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port: a.config.Server.Port,
		},
		DiaryUseCase:        a.diaryUseCase,
		WeatherResolver:     a.resolver,
		WeatherIngester:     a.scheduler,
		SystemHealthChecker: systemHealthChecker,
		MetricsCollector:    metricsCollector,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start launches the scheduler when enabled and blocks serving HTTP
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	if err := a.StartScheduler(); err != nil {
		return err
	}

	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

// StartScheduler arms the startup and daily ingestion triggers unless disabled
func (a *Application) StartScheduler() error {
	if !a.config.Scheduler.Enabled {
		slog.Info("Scheduler disabled by configuration")
		return nil
	}

	if err := a.scheduler.Start(); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}
	slog.Info("Next daily ingestion", "at", a.scheduler.NextDailyRun())
	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	a.scheduler.Stop()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// Scheduler returns the ingestion scheduler
func (a *Application) Scheduler() *scheduler.Scheduler {
	return a.scheduler
}

// Dependencies returns the dependency container for testing
func (a *Application) Dependencies() *DependencyContainer {
	return a.deps
}
