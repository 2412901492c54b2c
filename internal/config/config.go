package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"weatherlog.app/pkg/errors"
	"weatherlog.app/pkg/validation"
)

const (
	maxRedisDB              = 15
	maxCacheTTLMinutes      = 1440
	maxPortNumber           = 65535
	maxWeatherTimeout       = 60
	maxStartupDelayMillis   = 60000
	defaultStartupDelayMsec = 1000
)

// Config represents the application configuration structure
type Config struct {
	Server    ServerConfig    `split_words:"true"`
	Database  DatabaseConfig  `split_words:"true"`
	Weather   WeatherConfig   `split_words:"true"`
	Scheduler SchedulerConfig `split_words:"true"`
	Cache     CacheConfig     `split_words:"true"`
}

type ServerConfig struct {
	Port     int    `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// DatabaseDriver selects the gorm dialector
type DatabaseDriver string

const (
	DriverPostgres DatabaseDriver = "postgres"
	DriverSQLite   DatabaseDriver = "sqlite"
)

type DatabaseConfig struct {
	Driver     DatabaseDriver `envconfig:"DB_DRIVER" default:"postgres"`
	Host       string         `envconfig:"DB_HOST" default:"localhost"`
	Port       int            `envconfig:"DB_PORT" default:"5432"`
	User       string         `envconfig:"DB_USER" default:"postgres"`
	Password   string         `envconfig:"DB_PASSWORD" default:"postgres"`
	Name       string         `envconfig:"DB_NAME" default:"weatherlog"`
	SSLMode    string         `envconfig:"DB_SSL_MODE" default:"disable"`
	SQLitePath string         `envconfig:"DB_SQLITE_PATH" default:"weatherlog.db"`
}

func (c DatabaseConfig) GetDSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type WeatherConfig struct {
	APIKey                       string `envconfig:"OPENWEATHERMAP_API_KEY" required:"true"`
	BaseURL                      string `envconfig:"OPENWEATHERMAP_API_URL" default:"https://api.openweathermap.org/data/2.5/weather"`
	City                         string `envconfig:"WEATHER_CITY" default:"Seoul"`
	TimeoutSeconds               int    `envconfig:"WEATHER_TIMEOUT_SECONDS" default:"5"`
	EnableLogging                bool   `envconfig:"WEATHER_ENABLE_LOGGING" default:"false"`
	LogFilePath                  string `envconfig:"WEATHER_LOG_FILE_PATH" default:"logs/weather_provider.log"`
	CircuitBreakerEnabled        bool   `envconfig:"WEATHER_CIRCUIT_BREAKER_ENABLED" default:"false"`
	CircuitBreakerFailures       int    `envconfig:"WEATHER_CIRCUIT_BREAKER_FAILURES" default:"5"`
	CircuitBreakerTimeoutSeconds int    `envconfig:"WEATHER_CIRCUIT_BREAKER_TIMEOUT_SECONDS" default:"60"`
}

// Timeout returns the bounded wait applied to each provider call
func (w WeatherConfig) Timeout() time.Duration {
	return time.Duration(w.TimeoutSeconds) * time.Second
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeNone
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeNone:
		return "none"
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeNone || c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch s {
	case "none":
		return CacheTypeNone
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type       CacheType   `envconfig:"CACHE_TYPE" default:"none"`
	TTLMinutes int         `envconfig:"CACHE_TTL_MINUTES" default:"60"`
	Redis      RedisConfig `split_words:"true"`
}

// TTL returns the lifetime of read-through cache entries
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type SchedulerConfig struct {
	Enabled            bool   `envconfig:"SCHEDULER_ENABLED" default:"true"`
	DailyAt            string `envconfig:"SCHEDULER_DAILY_AT" default:"01:00"`
	StartupDelayMillis int    `envconfig:"SCHEDULER_STARTUP_DELAY_MS" default:"1000"`
	Timezone           string `envconfig:"SCHEDULER_TIMEZONE" default:"Local"`
}

// StartupDelay returns the one-shot delay before the startup ingestion
func (s SchedulerConfig) StartupDelay() time.Duration {
	if s.StartupDelayMillis <= 0 {
		return defaultStartupDelayMsec * time.Millisecond
	}
	return time.Duration(s.StartupDelayMillis) * time.Millisecond
}

// Location resolves the configured timezone
func (s SchedulerConfig) Location() (*time.Location, error) {
	if s.Timezone == "" || s.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, errors.NewConfigurationError("SCHEDULER_TIMEZONE is not a known IANA zone", err)
	}
	return loc, nil
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Scheduler.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case DriverSQLite:
		if d.SQLitePath == "" {
			return errors.NewConfigurationError("DB_SQLITE_PATH cannot be empty when DB_DRIVER=sqlite", nil)
		}
		return nil
	case DriverPostgres:
	default:
		return errors.NewConfigurationError("DB_DRIVER must be one of: postgres, sqlite", nil)
	}

	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (w *WeatherConfig) Validate() error {
	if w.APIKey == "" {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_KEY must be configured", nil)
	}
	if !strings.HasPrefix(w.BaseURL, "http://") && !strings.HasPrefix(w.BaseURL, "https://") {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_URL must start with http:// or https://", nil)
	}
	if !validation.IsNotEmpty(w.City) {
		return errors.NewConfigurationError("WEATHER_CITY cannot be empty", nil)
	}
	if w.TimeoutSeconds < 1 || w.TimeoutSeconds > maxWeatherTimeout {
		return errors.NewConfigurationError("WEATHER_TIMEOUT_SECONDS must be between 1 and 60", nil)
	}
	if w.EnableLogging && w.LogFilePath == "" {
		return errors.NewConfigurationError("WEATHER_LOG_FILE_PATH cannot be empty when logging is enabled", nil)
	}
	if w.CircuitBreakerEnabled {
		if w.CircuitBreakerFailures < 1 {
			return errors.NewConfigurationError("WEATHER_CIRCUIT_BREAKER_FAILURES must be at least 1", nil)
		}
		if w.CircuitBreakerTimeoutSeconds < 1 {
			return errors.NewConfigurationError("WEATHER_CIRCUIT_BREAKER_TIMEOUT_SECONDS must be at least 1", nil)
		}
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: none, memory, redis", nil)
	}
	if c.Type == CacheTypeNone {
		return nil
	}
	if c.TTLMinutes < 1 || c.TTLMinutes > maxCacheTTLMinutes {
		return errors.NewConfigurationError("CACHE_TTL_MINUTES must be between 1 and 1440 minutes", nil)
	}
	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}
	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (s *SchedulerConfig) Validate() error {
	if !validation.IsValidClock(s.DailyAt) {
		return errors.NewConfigurationError("SCHEDULER_DAILY_AT must be a HH:MM wall-clock time", nil)
	}
	if s.StartupDelayMillis < 0 || s.StartupDelayMillis > maxStartupDelayMillis {
		return errors.NewConfigurationError("SCHEDULER_STARTUP_DELAY_MS must be between 0 and 60000", nil)
	}
	if _, err := s.Location(); err != nil {
		return err
	}
	return nil
}
