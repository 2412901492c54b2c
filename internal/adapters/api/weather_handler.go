package api

import (
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"
	"weatherlog.app/internal/core/weather"
	"weatherlog.app/pkg/calendar"
	"weatherlog.app/pkg/errors"
)

// WeatherRequest is bound from the query string of GET /api/weather
type WeatherRequest struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

// WeatherResponse represents the HTTP response for weather data
type WeatherResponse struct {
	Date        string  `json:"date"`
	Weather     string  `json:"weather"`
	Temperature float64 `json:"temperature"`
	Stored      bool    `json:"stored"`
}

func newWeatherResponse(record *weather.Record) WeatherResponse {
	return WeatherResponse{
		Date:        record.DateString(),
		Weather:     record.Description,
		Temperature: record.TemperatureCelsius,
		Stored:      record.ID != 0,
	}
}

// getWeather handles GET /api/weather requests. It never writes to the store.
func (s *HTTPServerAdapter) getWeather(c *gin.Context) {
	var req WeatherRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Debug("Request binding error", "error", err)
		s.handleError(c, errors.NewValidationError(bindingErrorMessage(err)))
		return
	}

	date, err := calendar.Parse(req.Date)
	if err != nil {
		s.handleError(c, errors.NewValidationError(err.Error()))
		return
	}

	record, err := s.weatherResolver.ResolveWeather(c.Request.Context(), date)
	if err != nil {
		slog.Error("Weather resolution error", "error", err, "date", req.Date)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newWeatherResponse(record))
}

// ingestWeather handles POST /api/weather/ingest requests
func (s *HTTPServerAdapter) ingestWeather(c *gin.Context) {
	record, err := s.weatherIngester.IngestToday(c.Request.Context())
	if err != nil {
		slog.Error("Manual ingestion error", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newWeatherResponse(record))
}
