package database

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"weatherlog.app/internal/ports"
	"weatherlog.app/pkg/calendar"
	"weatherlog.app/pkg/errors"
)

// WeatherRecordModel represents the database model for the per-day weather cache
type WeatherRecordModel struct {
	ID                 uint    `gorm:"primaryKey"`
	Date               string  `gorm:"size:10;uniqueIndex;not null"`
	Description        string  `gorm:"not null"`
	TemperatureCelsius float64 `gorm:"not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (WeatherRecordModel) TableName() string {
	return "weather_records"
}

// WeatherRepositoryAdapter implements the WeatherStore port using GORM
type WeatherRepositoryAdapter struct {
	db *gorm.DB
}

// NewWeatherRepositoryAdapter creates a new weather repository adapter
func NewWeatherRepositoryAdapter(db *gorm.DB) *WeatherRepositoryAdapter {
	return &WeatherRepositoryAdapter{db: db}
}

// FindByDate retrieves the record for a day, or a NotFound error
func (r *WeatherRepositoryAdapter) FindByDate(ctx context.Context, date time.Time) (*ports.WeatherRecordData, error) {
	var model WeatherRecordModel
	result := r.db.WithContext(ctx).Where("date = ?", calendar.Format(date)).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("weather record not found for " + calendar.Format(date))
		}
		return nil, errors.NewDatabaseError("failed to find weather record", result.Error)
	}

	return r.modelToData(&model)
}

// Save inserts a record when it has no ID and updates it in place otherwise.
// An insert that races another insert for the same day updates that row instead.
func (r *WeatherRepositoryAdapter) Save(ctx context.Context, record *ports.WeatherRecordData) error {
	if record == nil {
		return errors.NewValidationError("weather record cannot be nil")
	}

	model := r.dataToModel(record)
	db := r.db.WithContext(ctx)

	if record.ID == 0 {
		result := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"description", "temperature_celsius", "updated_at"}),
		}).Create(model)
		if result.Error != nil {
			return errors.NewDatabaseError("failed to insert weather record", result.Error)
		}

		// On conflict the returned ID may be absent, so read back the row for the day.
		var stored WeatherRecordModel
		if err := db.Where("date = ?", model.Date).First(&stored).Error; err != nil {
			return errors.NewDatabaseError("failed to read back weather record", err)
		}
		record.ID = stored.ID
		record.CreatedAt = stored.CreatedAt
		record.UpdatedAt = stored.UpdatedAt
		return nil
	}

	result := db.Model(&WeatherRecordModel{ID: record.ID}).Updates(map[string]interface{}{
		"description":         model.Description,
		"temperature_celsius": model.TemperatureCelsius,
		"updated_at":          time.Now().UTC(),
	})
	if result.Error != nil {
		return errors.NewDatabaseError("failed to update weather record", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("weather record not found for update")
	}

	return nil
}

// dataToModel converts port data to database model
func (r *WeatherRepositoryAdapter) dataToModel(data *ports.WeatherRecordData) *WeatherRecordModel {
	return &WeatherRecordModel{
		ID:                 data.ID,
		Date:               calendar.Format(data.Date),
		Description:        data.Description,
		TemperatureCelsius: data.TemperatureCelsius,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// modelToData converts database model to port data
func (r *WeatherRepositoryAdapter) modelToData(model *WeatherRecordModel) (*ports.WeatherRecordData, error) {
	date, err := calendar.Parse(model.Date)
	if err != nil {
		return nil, errors.NewDatabaseError("stored weather record has an invalid date", err)
	}

	return &ports.WeatherRecordData{
		ID:                 model.ID,
		Date:               date,
		Description:        model.Description,
		TemperatureCelsius: model.TemperatureCelsius,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	}, nil
}
