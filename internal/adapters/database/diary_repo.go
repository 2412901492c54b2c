package database

import (
	"context"
	"time"

	"gorm.io/gorm"
	"weatherlog.app/internal/ports"
	"weatherlog.app/pkg/calendar"
	"weatherlog.app/pkg/errors"
)

// DiaryModel represents the database model for diary entries
type DiaryModel struct {
	ID                 string  `gorm:"primaryKey;size:36"`
	Date               string  `gorm:"size:10;index;not null"`
	Text               string  `gorm:"type:text;not null"`
	WeatherDescription string  `gorm:"not null"`
	TemperatureCelsius float64 `gorm:"not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (DiaryModel) TableName() string {
	return "diaries"
}

// DiaryRepositoryAdapter implements the DiaryRepository port using GORM
type DiaryRepositoryAdapter struct {
	db *gorm.DB
}

// NewDiaryRepositoryAdapter creates a new diary repository adapter
func NewDiaryRepositoryAdapter(db *gorm.DB) *DiaryRepositoryAdapter {
	return &DiaryRepositoryAdapter{db: db}
}

func (r *DiaryRepositoryAdapter) Create(ctx context.Context, entry *ports.DiaryEntryData) error {
	if entry == nil {
		return errors.NewValidationError("diary entry cannot be nil")
	}
	if entry.ID == "" {
		return errors.NewValidationError("diary entry ID cannot be empty")
	}

	model := r.dataToModel(entry)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return errors.NewDatabaseError("failed to create diary entry", err)
	}

	entry.CreatedAt = model.CreatedAt
	entry.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByDate returns the day's entries in creation order
func (r *DiaryRepositoryAdapter) FindByDate(ctx context.Context, date time.Time) ([]*ports.DiaryEntryData, error) {
	var models []DiaryModel
	result := r.db.WithContext(ctx).
		Where("date = ?", calendar.Format(date)).
		Order("created_at ASC").Order("id ASC").
		Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to find diary entries", result.Error)
	}

	return r.modelsToData(models)
}

// FindBetween returns entries for start..end inclusive, ordered by day then creation
func (r *DiaryRepositoryAdapter) FindBetween(ctx context.Context, start, end time.Time) ([]*ports.DiaryEntryData, error) {
	var models []DiaryModel
	result := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", calendar.Format(start), calendar.Format(end)).
		Order("date ASC").Order("created_at ASC").Order("id ASC").
		Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to find diary entries", result.Error)
	}

	return r.modelsToData(models)
}

// UpdateText changes only the text of one entry
func (r *DiaryRepositoryAdapter) UpdateText(ctx context.Context, id string, text string) error {
	if id == "" {
		return errors.NewValidationError("diary entry ID cannot be empty")
	}

	result := r.db.WithContext(ctx).Model(&DiaryModel{ID: id}).Updates(map[string]interface{}{
		"text":       text,
		"updated_at": time.Now().UTC(),
	})
	if result.Error != nil {
		return errors.NewDatabaseError("failed to update diary entry", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("diary entry not found")
	}

	return nil
}

// DeleteByDate removes all entries of a day and returns the number removed
func (r *DiaryRepositoryAdapter) DeleteByDate(ctx context.Context, date time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("date = ?", calendar.Format(date)).Delete(&DiaryModel{})
	if result.Error != nil {
		return 0, errors.NewDatabaseError("failed to delete diary entries", result.Error)
	}

	return result.RowsAffected, nil
}

// dataToModel converts port data to database model
func (r *DiaryRepositoryAdapter) dataToModel(data *ports.DiaryEntryData) *DiaryModel {
	return &DiaryModel{
		ID:                 data.ID,
		Date:               calendar.Format(data.Date),
		Text:               data.Text,
		WeatherDescription: data.WeatherDescription,
		TemperatureCelsius: data.TemperatureCelsius,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// modelsToData converts database models to port data
func (r *DiaryRepositoryAdapter) modelsToData(models []DiaryModel) ([]*ports.DiaryEntryData, error) {
	entries := make([]*ports.DiaryEntryData, 0, len(models))
	for i := range models {
		date, err := calendar.Parse(models[i].Date)
		if err != nil {
			return nil, errors.NewDatabaseError("stored diary entry has an invalid date", err)
		}
		entries = append(entries, &ports.DiaryEntryData{
			ID:                 models[i].ID,
			Date:               date,
			Text:               models[i].Text,
			WeatherDescription: models[i].WeatherDescription,
			TemperatureCelsius: models[i].TemperatureCelsius,
			CreatedAt:          models[i].CreatedAt,
			UpdatedAt:          models[i].UpdatedAt,
		})
	}
	return entries, nil
}
