package external

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/sony/gobreaker"
	"weatherlog.app/internal/ports"
	"weatherlog.app/pkg/errors"
)

// CircuitBreakerProvider stops calling the provider after consecutive
// failures and fails fast with ProviderUnavailable until the timeout elapses.
type CircuitBreakerProvider struct {
	provider ports.WeatherProvider
	breaker  *gobreaker.CircuitBreaker
	logger   ports.Logger
}

type CircuitBreakerParams struct {
	MaxFailures uint32
	OpenTimeout time.Duration
	Logger      ports.Logger
}

func NewCircuitBreakerProvider(provider ports.WeatherProvider, params CircuitBreakerParams) *CircuitBreakerProvider {
	maxFailures := params.MaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}

	p := &CircuitBreakerProvider{
		provider: provider,
		logger:   params.Logger,
	}

	p.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        provider.ProviderName(),
		MaxRequests: 1,
		Timeout:     params.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			// A malformed body means the provider answered; only outages trip the breaker.
			return err == nil || errors.TypeOf(err) == errors.MalformedPayloadError
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			p.logger.Warn("Weather provider circuit breaker state changed",
				ports.F("provider", name),
				ports.F("from", from.String()),
				ports.F("to", to.String()))
		},
	})

	return p
}

func (p *CircuitBreakerProvider) FetchCurrentWeather(ctx context.Context) (*ports.ProviderPayload, error) {
	result, err := p.breaker.Execute(func() (interface{}, error) {
		return p.provider.FetchCurrentWeather(ctx)
	})
	if err != nil {
		if stderrors.Is(err, gobreaker.ErrOpenState) || stderrors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, errors.NewProviderUnavailableError("weather provider circuit is open", err)
		}
		return nil, err
	}
	return result.(*ports.ProviderPayload), nil
}

func (p *CircuitBreakerProvider) ProviderName() string {
	return p.provider.ProviderName()
}

// State reports the breaker state for health checks
func (p *CircuitBreakerProvider) State() string {
	return p.breaker.State().String()
}
