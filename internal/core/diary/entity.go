package diary

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"weatherlog.app/internal/core/weather"
	"weatherlog.app/pkg/calendar"
	"weatherlog.app/pkg/validation"
)

// Entry is a diary note for one day with the weather copied in at creation.
// Only Text changes after that.
type Entry struct {
	ID                 string
	Date               time.Time
	Text               string
	WeatherDescription string
	TemperatureCelsius float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewEntry creates a new diary entry stamped with a snapshot of w
func NewEntry(date time.Time, text string, w *weather.Record, now time.Time) *Entry {
	return &Entry{
		ID:                 uuid.NewString(),
		Date:               calendar.Day(date),
		Text:               text,
		WeatherDescription: w.Description,
		TemperatureCelsius: w.TemperatureCelsius,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// IsValid validates diary entry data
func (e *Entry) IsValid() error {
	if _, err := uuid.Parse(e.ID); err != nil {
		return fmt.Errorf("id must be a UUID")
	}
	if e.Date.IsZero() {
		return fmt.Errorf("date cannot be empty")
	}
	if !validation.IsNotEmpty(e.Text) {
		return fmt.Errorf("text cannot be empty")
	}
	if !validation.IsNotEmpty(e.WeatherDescription) {
		return fmt.Errorf("weather description cannot be empty")
	}
	if !validation.IsFinite(e.TemperatureCelsius) {
		return fmt.Errorf("temperature must be a finite number")
	}
	return nil
}

// DateString returns the entry's day as YYYY-MM-DD
func (e *Entry) DateString() string {
	return calendar.Format(e.Date)
}

// WeatherText renders the auto-collected diary text for w
func WeatherText(w *weather.Record) string {
	return "Auto-collected weather: " + w.String()
}
