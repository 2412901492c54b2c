package diary

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"weatherlog.app/internal/core/weather"
)

func TestNewEntry_CopiesWeather(t *testing.T) {
	now := time.Date(2024, 12, 31, 9, 0, 0, 0, time.UTC)
	w := &weather.Record{ID: 3, Description: "Clear", TemperatureCelsius: 22.5}

	entry := NewEntry(time.Date(2024, 12, 31, 18, 0, 0, 0, time.UTC), "walked by the river", w, now)

	assert.NoError(t, entry.IsValid())
	assert.Equal(t, "2024-12-31", entry.DateString())
	assert.Equal(t, "Clear", entry.WeatherDescription)
	assert.Equal(t, 22.5, entry.TemperatureCelsius)
	assert.Equal(t, now, entry.CreatedAt)

	w.Description = "Rain"
	assert.Equal(t, "Clear", entry.WeatherDescription)
}

func TestNewEntry_UniqueIDs(t *testing.T) {
	w := &weather.Record{Description: "Clear"}
	a := NewEntry(time.Now(), "a", w, time.Now())
	b := NewEntry(time.Now(), "b", w, time.Now())
	assert.NotEqual(t, a.ID, b.ID)
}

func TestEntry_IsValid(t *testing.T) {
	valid := func() Entry {
		return *NewEntry(time.Now(), "note", &weather.Record{Description: "Clear", TemperatureCelsius: 1}, time.Now())
	}

	tests := []struct {
		name   string
		mutate func(e *Entry)
		errMsg string
	}{
		{name: "BadID", mutate: func(e *Entry) { e.ID = "42" }, errMsg: "id must be a UUID"},
		{name: "NoDate", mutate: func(e *Entry) { e.Date = time.Time{} }, errMsg: "date cannot be empty"},
		{name: "BlankText", mutate: func(e *Entry) { e.Text = " \t" }, errMsg: "text cannot be empty"},
		{name: "NoWeather", mutate: func(e *Entry) { e.WeatherDescription = "" }, errMsg: "weather description cannot be empty"},
		{name: "NaN", mutate: func(e *Entry) { e.TemperatureCelsius = math.NaN() }, errMsg: "temperature must be a finite number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid()
			tt.mutate(&e)
			err := e.IsValid()
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

func TestWeatherText(t *testing.T) {
	assert.Equal(t, "Auto-collected weather: Clear, 22.5°C",
		WeatherText(&weather.Record{Description: "Clear", TemperatureCelsius: 22.5}))
}
