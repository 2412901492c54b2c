// Package scheduler triggers weather ingestion once at startup and once per calendar day
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"weatherlog.app/internal/core/weather"
	"weatherlog.app/internal/metrics"
	"weatherlog.app/internal/ports"
	"weatherlog.app/pkg/errors"
	"weatherlog.app/pkg/validation"
)

const (
	TriggerStartup = "startup"
	TriggerDaily   = "daily"
	TriggerManual  = "manual"

	defaultDailyAt    = "01:00"
	defaultRunTimeout = 30 * time.Second
)

// Ingester refreshes today's weather record
type Ingester interface {
	IngestToday(ctx context.Context) (*weather.Record, error)
}

type Params struct {
	Ingester Ingester
	Logger   ports.Logger
	// Metrics is optional.
	Metrics ports.WeatherMetrics

	Location     *time.Location
	DailyAt      string
	StartupDelay time.Duration
	RunTimeout   time.Duration
}

// Scheduler owns the daily gocron job and the startup one-shot timer.
// Every trigger runs independently; a failing run never affects later ones.
type Scheduler struct {
	cron     *gocron.Scheduler
	ingester Ingester
	logger   ports.Logger
	metrics  ports.WeatherMetrics

	dailyAt      string
	startupDelay time.Duration
	runTimeout   time.Duration
	// cadence shapes the daily job before Do; tests shorten it.
	cadence func(*gocron.Scheduler) *gocron.Scheduler

	mu           sync.Mutex
	dailyJob     *gocron.Job
	startupTimer *time.Timer
	started      bool
}

func New(params Params) (*Scheduler, error) {
	if params.Ingester == nil {
		return nil, errors.NewValidationError("ingester is required")
	}
	if params.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	dailyAt := params.DailyAt
	if dailyAt == "" {
		dailyAt = defaultDailyAt
	}
	if !validation.IsValidClock(dailyAt) {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid daily run time %q, expected HH:MM", dailyAt))
	}

	location := params.Location
	if location == nil {
		location = time.Local
	}
	runTimeout := params.RunTimeout
	if runTimeout <= 0 {
		runTimeout = defaultRunTimeout
	}

	cron := gocron.NewScheduler(location)
	cron.SingletonModeAll()
	cron.WaitForScheduleAll()

	return &Scheduler{
		cron:         cron,
		ingester:     params.Ingester,
		logger:       params.Logger,
		metrics:      params.Metrics,
		dailyAt:      dailyAt,
		startupDelay: params.StartupDelay,
		runTimeout:   runTimeout,
		cadence: func(c *gocron.Scheduler) *gocron.Scheduler {
			return c.Every(1).Day().At(dailyAt)
		},
	}, nil
}

// Start registers the daily job, starts the cron executor and arms the startup trigger.
// Calling Start twice is a no-op.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	job, err := s.cadence(s.cron).Do(s.fire, TriggerDaily)
	if err != nil {
		return errors.NewConfigurationError("failed to schedule daily ingestion", err)
	}
	s.dailyJob = job
	s.cron.StartAsync()

	s.startupTimer = time.AfterFunc(s.startupDelay, func() {
		s.fire(TriggerStartup)
	})
	s.started = true

	s.logger.Info("Scheduler started",
		ports.F("daily_at", s.dailyAt),
		ports.F("location", s.cron.Location().String()),
		ports.F("startup_delay_ms", s.startupDelay.Milliseconds()))
	return nil
}

// Stop cancels the startup trigger if it has not fired and stops the daily job
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	if s.startupTimer != nil {
		s.startupTimer.Stop()
		s.startupTimer = nil
	}
	s.cron.Stop()
	// Start registers a fresh job, so the old one must not survive a restart.
	s.cron.RemoveByReference(s.dailyJob)
	s.dailyJob = nil
	s.started = false

	s.logger.Info("Scheduler stopped")
}

// NextDailyRun returns the next firing of the daily job, or the zero time before Start
func (s *Scheduler) NextDailyRun() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dailyJob == nil {
		return time.Time{}
	}
	return s.dailyJob.NextRun()
}

// Run performs one ingestion for trigger. Panics are recovered and returned as errors;
// the outcome is logged and counted either way.
func (s *Scheduler) Run(ctx context.Context, trigger string) (record *weather.Record, err error) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			record = nil
			err = fmt.Errorf("ingestion panicked: %v", r)
			s.logger.Error("Weather ingestion panicked",
				ports.F("trigger", trigger),
				ports.F("panic", fmt.Sprint(r)))
			s.recordOutcome(trigger, metrics.OutcomePanic)
		}
	}()

	record, err = s.ingester.IngestToday(ctx)
	if err != nil {
		s.logger.Error("Weather ingestion failed",
			ports.F("trigger", trigger),
			ports.F("error", err.Error()),
			ports.F("duration_ms", time.Since(start).Milliseconds()))
		s.recordOutcome(trigger, errors.TypeOf(err).String())
		return nil, err
	}

	s.logger.Info("Weather ingestion completed",
		ports.F("trigger", trigger),
		ports.F("date", record.DateString()),
		ports.F("weather", record.String()),
		ports.F("duration_ms", time.Since(start).Milliseconds()))
	s.recordOutcome(trigger, metrics.OutcomeSuccess)
	return record, nil
}

// IngestToday runs an out-of-schedule ingestion through the same path as the triggers
func (s *Scheduler) IngestToday(ctx context.Context) (*weather.Record, error) {
	return s.Run(ctx, TriggerManual)
}

// fire is the callback of the timer and the cron job; the result is discarded
func (s *Scheduler) fire(trigger string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.runTimeout)
	defer cancel()

	_, _ = s.Run(ctx, trigger)
}

func (s *Scheduler) recordOutcome(trigger, outcome string) {
	if s.metrics != nil {
		s.metrics.RecordIngestion(trigger, outcome)
	}
}
