package ports

import (
	"context"
	"time"
)

// DiaryEntryData represents diary entry data for persistence
type DiaryEntryData struct {
	ID                 string
	Date               time.Time
	Text               string
	WeatherDescription string
	TemperatureCelsius float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// DiaryRepository defines the contract for diary entry persistence.
// Listings are ordered by date, then creation time.
type DiaryRepository interface {
	Create(ctx context.Context, entry *DiaryEntryData) error
	FindByDate(ctx context.Context, date time.Time) ([]*DiaryEntryData, error)
	FindBetween(ctx context.Context, start, end time.Time) ([]*DiaryEntryData, error)
	UpdateText(ctx context.Context, id string, text string) error
	DeleteByDate(ctx context.Context, date time.Time) (int64, error)
}
