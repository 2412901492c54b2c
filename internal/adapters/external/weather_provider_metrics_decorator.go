package external

import (
	"context"
	"strings"
	"time"

	"weatherlog.app/internal/metrics"
	"weatherlog.app/internal/ports"
	"weatherlog.app/pkg/errors"
)

// WeatherProviderMetricsDecorator counts provider calls by outcome and observes latency
type WeatherProviderMetricsDecorator struct {
	provider ports.WeatherProvider
	metrics  ports.WeatherMetrics
	label    string
}

func NewWeatherProviderMetricsDecorator(provider ports.WeatherProvider, m ports.WeatherMetrics) ports.WeatherProvider {
	return &WeatherProviderMetricsDecorator{
		provider: provider,
		metrics:  m,
		label:    baseProviderName(provider.ProviderName()),
	}
}

func (d *WeatherProviderMetricsDecorator) FetchCurrentWeather(ctx context.Context) (*ports.ProviderPayload, error) {
	start := time.Now()
	payload, err := d.provider.FetchCurrentWeather(ctx)

	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = errors.TypeOf(err).String()
	}
	d.metrics.RecordProviderCall(d.label, outcome, time.Since(start))

	return payload, err
}

func (d *WeatherProviderMetricsDecorator) ProviderName() string {
	return d.provider.ProviderName()
}

// baseProviderName strips decorator wrappers such as "logged(...)" so the
// Prometheus label stays stable regardless of decoration order.
func baseProviderName(name string) string {
	for {
		open := strings.Index(name, "(")
		if open < 0 || !strings.HasSuffix(name, ")") {
			return name
		}
		name = name[open+1 : len(name)-1]
	}
}
