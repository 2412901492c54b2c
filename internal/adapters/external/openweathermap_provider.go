// Package external provides adapters for external services:
// the OpenWeatherMap client, its decorators and the cache backends.
package external

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weatherlog.app/internal/ports"
	"weatherlog.app/pkg/errors"
)

const (
	defaultOpenWeatherMapURL = "https://api.openweathermap.org/data/2.5/weather"
	defaultProviderTimeout   = 5 * time.Second
	maxPayloadBytes          = 1 << 20
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenWeatherMapProviderAdapter implements WeatherProvider port for OpenWeatherMap.
// Location, credential and endpoint are fixed at construction.
type OpenWeatherMapProviderAdapter struct {
	apiKey  string
	baseURL string
	city    string
	client  HTTPClient
	logger  ports.Logger
}

// OpenWeatherMapProviderParams holds parameters for creating OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	APIKey  string
	BaseURL string
	City    string
	Timeout time.Duration
	Client  HTTPClient
	Logger  ports.Logger
}

// openWeatherMapResponse is the subset of the current-weather payload we rely on.
// Pointers mark the fields that must be present.
type openWeatherMapResponse struct {
	Name string `json:"name"`
	Dt   int64  `json:"dt"`
	Main *struct {
		Temp     *float64 `json:"temp"`
		Humidity float64  `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

// NewOpenWeatherMapProviderAdapter creates a new OpenWeatherMap provider adapter
func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) *OpenWeatherMapProviderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenWeatherMapURL
	}

	client := params.Client
	if client == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = defaultProviderTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &OpenWeatherMapProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		city:    params.City,
		client:  client,
		logger:  params.Logger,
	}
}

// FetchCurrentWeather performs one GET against the current-weather endpoint. No retries.
func (p *OpenWeatherMapProviderAdapter) FetchCurrentWeather(ctx context.Context) (*ports.ProviderPayload, error) {
	endpoint, err := p.requestURL()
	if err != nil {
		return nil, errors.NewConfigurationError("invalid OpenWeatherMap URL", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.NewProviderUnavailableError("failed to build OpenWeatherMap request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, errors.NewProviderTimeoutError("OpenWeatherMap did not respond in time", err)
		}
		return nil, errors.NewProviderUnavailableError("failed to call OpenWeatherMap", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			p.logger.Warn("Failed to close OpenWeatherMap response body", ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewProviderUnavailableError(fmt.Sprintf("OpenWeatherMap returned status %d", resp.StatusCode), nil)
	}

	var apiResp openWeatherMapResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxPayloadBytes)).Decode(&apiResp); err != nil {
		if isTimeout(err) {
			return nil, errors.NewProviderTimeoutError("OpenWeatherMap response timed out", err)
		}
		return nil, errors.NewMalformedPayloadError("failed to decode OpenWeatherMap response", err)
	}

	return p.toPayload(&apiResp)
}

// ProviderName returns the name of this weather provider
func (p *OpenWeatherMapProviderAdapter) ProviderName() string {
	return "openweathermap"
}

func (p *OpenWeatherMapProviderAdapter) requestURL() (string, error) {
	u, err := url.Parse(p.baseURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("q", p.city)
	q.Set("appid", p.apiKey)
	q.Set("units", "metric")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (p *OpenWeatherMapProviderAdapter) toPayload(apiResp *openWeatherMapResponse) (*ports.ProviderPayload, error) {
	if apiResp.Main == nil || apiResp.Main.Temp == nil {
		return nil, errors.NewMalformedPayloadError("OpenWeatherMap response is missing main.temp", nil)
	}
	if len(apiResp.Weather) == 0 || strings.TrimSpace(apiResp.Weather[0].Main) == "" {
		return nil, errors.NewMalformedPayloadError("OpenWeatherMap response is missing weather[0].main", nil)
	}

	observedAt := time.Now().UTC()
	if apiResp.Dt > 0 {
		observedAt = time.Unix(apiResp.Dt, 0).UTC()
	}

	location := apiResp.Name
	if location == "" {
		location = p.city
	}

	return &ports.ProviderPayload{
		Condition:          apiResp.Weather[0].Main,
		Detail:             apiResp.Weather[0].Description,
		TemperatureCelsius: *apiResp.Main.Temp,
		Humidity:           apiResp.Main.Humidity,
		Location:           location,
		ObservedAt:         observedAt,
	}, nil
}

func isTimeout(err error) bool {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return stderrors.As(err, &netErr) && netErr.Timeout()
}
