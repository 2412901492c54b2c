package weather

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	mocks "weatherlog.app/internal/mocks"
	"weatherlog.app/internal/ports"
	"weatherlog.app/pkg/calendar"
	"weatherlog.app/pkg/errors"
)

// memoryStore keeps one row per day, like the unique index in the database.
type memoryStore struct {
	mu     sync.Mutex
	rows   map[time.Time]ports.WeatherRecordData
	nextID uint
}

func newMemoryStore() *memoryStore {
	return &memoryStore{rows: make(map[time.Time]ports.WeatherRecordData)}
}

func (s *memoryStore) FindByDate(_ context.Context, date time.Time) (*ports.WeatherRecordData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[calendar.Day(date)]
	if !ok {
		return nil, errors.NewNotFoundError("weather record not found")
	}
	return &row, nil
}

func (s *memoryStore) Save(_ context.Context, record *ports.WeatherRecordData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	day := calendar.Day(record.Date)
	if record.ID == 0 {
		if existing, ok := s.rows[day]; ok {
			record.ID = existing.ID
		} else {
			s.nextID++
			record.ID = s.nextID
		}
	}
	record.Date = day
	s.rows[day] = *record
	return nil
}

func (s *memoryStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

func quietLogger(t *testing.T) *mocks.Logger {
	logger := mocks.NewLogger(t)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	return logger
}

func payload(condition string, temp float64) *ports.ProviderPayload {
	return &ports.ProviderPayload{Condition: condition, TemperatureCelsius: temp}
}
