package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherlog.app/pkg/errors"
)

func TestDay_DropsClockAndLocation(t *testing.T) {
	seoul, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	late := time.Date(2024, 12, 31, 23, 30, 0, 0, seoul)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), Day(late))
}

func TestToday_UsesLocation(t *testing.T) {
	seoul, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	// 16:30 UTC on Dec 31 is already Jan 1 in Seoul.
	now := time.Date(2024, 12, 31, 16, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-01-01", Format(Today(now, seoul)))
	assert.Equal(t, "2024-12-31", Format(Today(now, time.UTC)))
}

func TestParse(t *testing.T) {
	day, err := Parse("2024-12-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), day)

	_, err = Parse("12/31/2024")
	assert.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "2024-02-29", Format(time.Date(2024, 2, 29, 13, 0, 0, 0, time.UTC)))
}
