package validators

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/jeremy-dai/hi-time-sub000/internal/utils"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

const (
	minYear = 1970
	maxYear = 9999
)

var (
	planIDPattern = regexp.MustCompile(`^\d{4}-Q[1-4]$`)
	dayKeyPattern = regexp.MustCompile(`^\d{2}-\d{2}$`)
)

// ValidWeekKey checks an ISO week key such as "2025-W23".
func ValidWeekKey(key string) error {
	if _, _, err := models.ParseWeekKey(key); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidWeekKey, err)
	}
	return nil
}

// ValidDate checks a calendar date in YYYY-MM-DD form. Dates such as
// 2025-02-30 are rejected.
func ValidDate(date string) error {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil || t.Format(models.DateLayout) != date {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return nil
}

// ParseYear parses a four digit year key.
func ParseYear(key string) (int, error) {
	if len(key) != 4 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidYear, key)
	}
	year, err := strconv.Atoi(key)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidYear, key)
	}
	if err := ValidYear(year); err != nil {
		return 0, err
	}
	return year, nil
}

// ValidYear checks that year is in the supported range.
func ValidYear(year int) error {
	if year < minYear || year > maxYear {
		return fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}
	return nil
}

// ValidPlanID checks a quarter id such as "2025-Q2".
func ValidPlanID(id string) error {
	if !planIDPattern.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidPlanID, id)
	}
	return nil
}

// ValidDayKey checks a memory day key such as "06-01". Leap days are
// accepted.
func ValidDayKey(key string) error {
	if !dayKeyPattern.MatchString(key) {
		return fmt.Errorf("%w: %q", ErrInvalidDayKey, key)
	}
	if _, err := time.Parse("2006-01-02", "2024-"+key); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDayKey, key)
	}
	return nil
}

// ValidKey checks key against the addressing rules of kind.
func ValidKey(kind models.ResourceKind, key string) error {
	switch kind {
	case models.KindWeek:
		return ValidWeekKey(key)
	case models.KindSettings:
		if key != models.SettingsKey {
			return fmt.Errorf("%w: settings key must be %q", ErrInvalidKey, models.SettingsKey)
		}
		return nil
	case models.KindGoal:
		if !utils.IsUUID(key) {
			return fmt.Errorf("%w: %q", ErrInvalidGoalID, key)
		}
		return nil
	case models.KindPlan:
		return ValidPlanID(key)
	case models.KindShipping:
		return ValidDate(key)
	case models.KindReview, models.KindMemories:
		_, err := ParseYear(key)
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
