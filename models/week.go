package models

import (
	"fmt"
	"time"
)

// DaysPerWeek is the number of day columns in a week grid.
const DaysPerWeek = 7

// TimeBlock is one cell of the weekly time-tracking grid.
type TimeBlock struct {
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// Week is the time-tracking grid for one ISO week. It is also the wire
// envelope of /api/weeks/{key}: {"weekData": [...], "startingHour": n}.
type Week struct {
	// Key is the ISO week identifier, e.g. "2025-W23". It travels in the
	// URL and in the cache key, never in the body.
	Key string `json:"-"`

	// Days holds DaysPerWeek columns of time blocks, Monday first.
	Days [][]TimeBlock `json:"weekData"`

	// StartingHour is the hour of day the first block of each column
	// represents.
	StartingHour int `json:"startingHour"`
}

// WeekKey returns the ISO week key ("2006-W01") of t.
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// ParseWeekKey validates key and returns its ISO year and week.
func ParseWeekKey(key string) (year, week int, err error) {
	if _, err = fmt.Sscanf(key, "%4d-W%2d", &year, &week); err != nil {
		return 0, 0, fmt.Errorf("invalid week key %q: %w", key, err)
	}
	if len(key) != len("2006-W01") || week < 1 || week > 53 {
		return 0, 0, fmt.Errorf("invalid week key %q", key)
	}
	return year, week, nil
}
