// Package calendar converts between wall-clock instants and civil days.
//
// A day is represented as a time.Time at midnight UTC so that values compare
// with == and format identically regardless of the caller's location.
package calendar

import (
	"strings"
	"time"

	"weatherlog.app/pkg/errors"
	"weatherlog.app/pkg/validation"
)

// Day returns the civil day of t as seen in t's own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current civil day in loc.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return Day(now.In(loc))
}

// Parse reads a YYYY-MM-DD string.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(validation.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errors.NewValidationError("date must be in YYYY-MM-DD format: " + s)
	}
	return t, nil
}

// Format renders the civil day of t as YYYY-MM-DD.
func Format(t time.Time) string {
	return Day(t).Format(validation.DateLayout)
}
