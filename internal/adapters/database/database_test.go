package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"weatherlog.app/internal/config"
	"weatherlog.app/pkg/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open(config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, RunMigrations(db))

	t.Cleanup(func() {
		_ = Close(db)
	})
	return db
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	db, err := Open(config.DatabaseConfig{Driver: "mysql"})

	assert.Nil(t, db)
	require.Error(t, err)
	assert.True(t, errors.IsConfigurationError(err))
}

func TestRunMigrations_CreatesTables(t *testing.T) {
	db := setupTestDB(t)

	assert.True(t, db.Migrator().HasTable(&WeatherRecordModel{}))
	assert.True(t, db.Migrator().HasTable(&DiaryModel{}))

	// Running twice is harmless.
	assert.NoError(t, RunMigrations(db))
}
