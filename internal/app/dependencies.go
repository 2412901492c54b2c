package app

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"weatherlog.app/internal/adapters/database"
	"weatherlog.app/internal/adapters/external"
	"weatherlog.app/internal/adapters/infrastructure"
	"weatherlog.app/internal/config"
	"weatherlog.app/internal/metrics"
	"weatherlog.app/internal/ports"
)

// DependencyContainer builds and owns the adapters behind the application ports
type DependencyContainer struct {
	config *config.Config
	db     *gorm.DB
	ports  *ports.ApplicationPorts

	cache      ports.CacheProvider
	breaker    *external.CircuitBreakerProvider
	fileLogger *infrastructure.FileLoggerAdapter
}

func NewDependencyContainer(cfg *config.Config) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config: cfg,
	}

	if err := container.initializeDatabase(); err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	if err := container.initializePorts(); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeDatabase() error {
	slog.Info("Initializing database connection...", "driver", c.config.Database.Driver)

	db, err := database.Open(c.config.Database)
	if err != nil {
		return err
	}

	slog.Info("Running database migrations...")
	if err := database.RunMigrations(db); err != nil {
		_ = database.Close(db)
		return err
	}

	c.db = db
	slog.Info("Database connection established successfully")
	return nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	var logger ports.Logger = infrastructure.NewSlogLoggerAdapter(nil)
	weatherMetrics := metrics.NewWeatherMetrics()

	// Repositories
	weatherRepo := database.NewWeatherRepositoryAdapter(c.db)
	diaryRepo := database.NewDiaryRepositoryAdapter(c.db)

	provider := c.buildWeatherProvider(logger, weatherMetrics)

	cacheFactory := external.NewCacheProviderFactory()
	cache, err := cacheFactory.CreateCacheProvider(&c.config.Cache)
	if err != nil {
		slog.Error("Failed to create cache provider", "error", err)
		return fmt.Errorf("create cache provider: %w", err)
	}
	c.cache = cache

	var weatherStore ports.WeatherStore = weatherRepo
	cacheMetrics := metrics.NewCacheMetrics(c.config.Cache.Type.String())
	if cache != nil {
		weatherStore = external.NewCachedWeatherStore(external.CachedWeatherStoreParams{
			Store:   weatherRepo,
			Cache:   cache,
			Metrics: cacheMetrics,
			TTL:     c.config.Cache.TTL(),
			Logger:  logger,
		})
	}

	slog.Info("Cache provider initialized",
		"type", c.config.Cache.Type.String(),
		"ttl", c.config.Cache.TTL().String())

	c.ports = &ports.ApplicationPorts{
		// Weather
		WeatherProvider: provider,
		WeatherStore:    weatherStore,

		// Diary
		DiaryRepository: diaryRepo,

		// Metrics
		CacheMetrics:   cacheMetrics,
		WeatherMetrics: weatherMetrics,

		// Infrastructure
		ConfigProvider: infrastructure.NewConfigProviderAdapter(c.config),
		Logger:         logger,
		Database:       c.db,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

// buildWeatherProvider stacks the decorators: breaker(logging(metrics(openweathermap))).
// The breaker sits outermost so rejected calls are neither counted nor logged as provider calls.
func (c *DependencyContainer) buildWeatherProvider(logger ports.Logger, m ports.WeatherMetrics) ports.WeatherProvider {
	weatherCfg := c.config.Weather

	var provider ports.WeatherProvider = external.NewOpenWeatherMapProviderAdapter(external.OpenWeatherMapProviderParams{
		APIKey:  weatherCfg.APIKey,
		BaseURL: weatherCfg.BaseURL,
		City:    weatherCfg.City,
		Timeout: weatherCfg.Timeout(),
		Logger:  logger,
	})
	provider = external.NewWeatherProviderMetricsDecorator(provider, m)

	if weatherCfg.EnableLogging && weatherCfg.LogFilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(weatherCfg.LogFilePath)
		if err != nil {
			slog.Warn("Failed to create file logger, provider logging disabled", "error", err)
		} else {
			c.fileLogger = fileLogger
			provider = external.NewWeatherProviderLoggingDecorator(provider, fileLogger)
			slog.Info("Weather provider logging enabled", "path", weatherCfg.LogFilePath)
		}
	}

	if weatherCfg.CircuitBreakerEnabled {
		c.breaker = external.NewCircuitBreakerProvider(provider, external.CircuitBreakerParams{
			MaxFailures: uint32(weatherCfg.CircuitBreakerFailures),
			OpenTimeout: time.Duration(weatherCfg.CircuitBreakerTimeoutSeconds) * time.Second,
			Logger:      logger,
		})
		provider = c.breaker
		slog.Info("Weather provider circuit breaker enabled",
			"max_failures", weatherCfg.CircuitBreakerFailures)
	}

	return provider
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

// HealthCheckers builds the per-component checkers over the container's adapters
func (c *DependencyContainer) HealthCheckers() infrastructure.SystemHealthCheckerConfig {
	var breaker infrastructure.BreakerStater
	if c.breaker != nil {
		breaker = c.breaker
	}

	return infrastructure.SystemHealthCheckerConfig{
		DatabaseChecker: infrastructure.NewDatabaseHealthChecker(c.db),
		CacheChecker:    infrastructure.NewCacheHealthChecker(c.config.Cache.Type.String(), c.cache),
		WeatherChecker:  infrastructure.NewWeatherProviderHealthChecker(c.ports.WeatherProvider, breaker),
		ConfigProvider:  c.ports.ConfigProvider,
	}
}

// closer is implemented by cache backends holding connections
type closer interface {
	Close() error
}

// Cleanup releases the cache connection, the provider log file and the database
func (c *DependencyContainer) Cleanup() error {
	if cc, ok := c.cache.(closer); ok {
		if err := cc.Close(); err != nil {
			slog.Warn("Error closing cache", "error", err)
		}
	}
	if c.fileLogger != nil {
		if err := c.fileLogger.Close(); err != nil {
			slog.Warn("Error closing provider log file", "error", err)
		}
	}
	if c.db != nil {
		return database.Close(c.db)
	}
	return nil
}
