package backup

import (
	"fmt"
	"time"

	"github.com/jeremy-dai/hi-time-sub000/models"
)

// defaultLookback applies to tables without a configured window.
const defaultLookback = 30 * 24 * time.Hour

// SelectMode applies the calendar rule to the UTC date of now: the first of
// the month and every Sunday run full, other days incremental.
func SelectMode(now time.Time) models.BackupMode {
	now = now.UTC()
	if now.Day() == 1 || now.Weekday() == time.Sunday {
		return models.BackupFull
	}
	return models.BackupIncremental
}

// ParseMode validates a mode given on the command line. An empty string
// means "decide by calendar" and is returned unchanged.
func ParseMode(s string) (models.BackupMode, error) {
	switch mode := models.BackupMode(s); mode {
	case "", models.BackupFull, models.BackupIncremental:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// since returns the lower bound of an incremental export of table, or nil
// for a full export.
func since(mode models.BackupMode, now time.Time, lookbacks map[string]time.Duration, table string) *time.Time {
	if mode == models.BackupFull {
		return nil
	}

	lookback, ok := lookbacks[table]
	if !ok || lookback <= 0 {
		lookback = defaultLookback
	}

	from := now.Add(-lookback)
	return &from
}
