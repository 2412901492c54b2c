package weather

import (
	"fmt"
	"strings"
	"time"

	"weatherlog.app/internal/ports"
	"weatherlog.app/pkg/calendar"
	"weatherlog.app/pkg/errors"
	"weatherlog.app/pkg/validation"
)

// Record represents the resolved weather for a single calendar day
type Record struct {
	ID                 uint
	Date               time.Time
	Description        string
	TemperatureCelsius float64
}

// NewRecordFromPayload maps a provider payload onto the record for date.
// A payload without a usable condition or temperature is malformed.
func NewRecordFromPayload(date time.Time, payload *ports.ProviderPayload) (*Record, error) {
	if payload == nil {
		return nil, errors.NewMalformedPayloadError("provider returned an empty payload", nil)
	}

	record := &Record{
		Date:               calendar.Day(date),
		Description:        strings.TrimSpace(payload.Condition),
		TemperatureCelsius: payload.TemperatureCelsius,
	}
	if err := record.IsValid(); err != nil {
		return nil, errors.NewMalformedPayloadError("invalid weather payload", err)
	}
	return record, nil
}

// IsValid validates weather record data
func (r *Record) IsValid() error {
	if r.Date.IsZero() {
		return fmt.Errorf("date cannot be empty")
	}
	if !validation.IsNotEmpty(r.Description) {
		return fmt.Errorf("description cannot be empty")
	}
	if !validation.IsFinite(r.TemperatureCelsius) {
		return fmt.Errorf("temperature must be a finite number")
	}
	return nil
}

// DateString returns the record's day as YYYY-MM-DD
func (r *Record) DateString() string {
	return calendar.Format(r.Date)
}

// String returns a string representation of the weather
func (r *Record) String() string {
	return fmt.Sprintf("%s, %.1f°C", r.Description, r.TemperatureCelsius)
}

func recordFromData(data *ports.WeatherRecordData) *Record {
	return &Record{
		ID:                 data.ID,
		Date:               calendar.Day(data.Date),
		Description:        data.Description,
		TemperatureCelsius: data.TemperatureCelsius,
	}
}

func (r *Record) toData() *ports.WeatherRecordData {
	return &ports.WeatherRecordData{
		ID:                 r.ID,
		Date:               r.Date,
		Description:        r.Description,
		TemperatureCelsius: r.TemperatureCelsius,
	}
}
