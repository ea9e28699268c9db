package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jeremy-dai/hi-time-sub000/internal/validators"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

// decodeDocument unmarshals payload into the model of kind and copies the
// identity encoded in key (date, year, id) into it. The key always wins
// over what the body claims.
func decodeDocument(kind models.ResourceKind, key string, payload json.RawMessage) (any, error) {
	var doc any
	switch kind {
	case models.KindWeek:
		doc = &models.Week{}
	case models.KindSettings:
		doc = &models.Settings{}
	case models.KindGoal:
		doc = &models.Goal{}
	case models.KindPlan:
		doc = &models.QuarterlyPlan{}
	case models.KindShipping:
		doc = &models.ShippingEntry{}
	case models.KindReview:
		doc = &models.AnnualReview{}
	case models.KindMemories:
		doc = &models.YearMemories{}
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidResource, kind)
	}

	if err := json.Unmarshal(payload, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResource, err)
	}

	switch d := doc.(type) {
	case *models.Week:
		d.Key = key
	case *models.Goal:
		d.ID = key
	case *models.QuarterlyPlan:
		d.ID = key
		*d = d.Normalized()
	case *models.ShippingEntry:
		d.Date = key
	case *models.AnnualReview:
		year, err := validators.ParseYear(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
		}
		d.Year = year
	case *models.YearMemories:
		year, err := validators.ParseYear(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
		}
		d.Year = year
	}

	return doc, nil
}

// documentFields lists the validator fields checked for a stored document.
// Key-derived fields are covered by the resource key check.
func documentFields(kind models.ResourceKind) []string {
	switch kind {
	case models.KindWeek:
		return []string{validators.FieldDays, validators.FieldStartingHour}
	case models.KindSettings:
		return []string{validators.FieldStartingHour}
	case models.KindGoal:
		return []string{validators.FieldTitle, validators.FieldQuarter, validators.FieldProgress}
	case models.KindMemories:
		return []string{validators.FieldDays}
	default:
		return nil
	}
}

// stamp sets server-owned timestamps. existing is the stored copy, if any.
func stamp(doc any, existing any, now time.Time) {
	switch d := doc.(type) {
	case *models.Goal:
		d.UpdatedAt = now
		d.CreatedAt = now
		if prev, ok := existing.(*models.Goal); ok && !prev.CreatedAt.IsZero() {
			d.CreatedAt = prev.CreatedAt
		}
	case *models.AnnualReview:
		d.UpdatedAt = now
	}
}
