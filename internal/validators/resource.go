// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jeremy-dai/hi-time-sub000/internal/utils"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldUserID targets the owner of a stored resource.
	FieldUserID = "user_id"

	// FieldKind targets the resource kind of a stored resource.
	FieldKind = "kind"

	// FieldKey targets the resource key, checked against the rules of its
	// kind (week key, date, year, plan id, goal id).
	FieldKey = "key"

	// FieldPayload targets the JSON document of a stored resource.
	FieldPayload = "payload"

	// FieldID targets the identifier of a goal or a plan.
	FieldID = "id"

	// FieldTitle targets a goal title.
	FieldTitle = "title"

	// FieldQuarter targets the "YYYY-Qn" quarter of a goal.
	FieldQuarter = "quarter"

	// FieldProgress targets a goal's completion percentage.
	FieldProgress = "progress"

	// FieldStartDate targets the anchor date of a quarterly plan.
	FieldStartDate = "start_date"

	// FieldDate targets the day of a shipping entry.
	FieldDate = "date"

	// FieldYear targets the year of a review or of year memories.
	FieldYear = "year"

	// FieldDays targets the day keys of year memories or the day columns
	// of a week.
	FieldDays = "days"

	// FieldStartingHour targets the first hour of a week grid or of the
	// settings document.
	FieldStartingHour = "starting_hour"

	// FieldLogin targets the login of a user.
	FieldLogin = "login"

	// FieldPassword targets the plaintext password of a register or login
	// request.
	FieldPassword = "password"
)

// ResourceValidator implements [Validator] for every synced document and
// for stored resource rows.
//
// It supports both value and pointer receivers for every model type and
// allows optional field-level scoping via variadic field name arguments.
type ResourceValidator struct {
}

// NewResourceValidator constructs a new ResourceValidator and returns it as
// the Validator interface.
func NewResourceValidator() Validator {
	return &ResourceValidator{}
}

// Validate dispatches validation to the appropriate type-specific method.
// When no fields are given every field of the type is checked.
func (v *ResourceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Resource:
		return v.validateResource(ctx, value, fields...)
	case *models.Resource:
		return v.validateResource(ctx, *value, fields...)

	case models.Goal:
		return v.validateGoal(ctx, value, fields...)
	case *models.Goal:
		return v.validateGoal(ctx, *value, fields...)

	case models.QuarterlyPlan:
		return v.validatePlan(ctx, value, fields...)
	case *models.QuarterlyPlan:
		return v.validatePlan(ctx, *value, fields...)

	case models.ShippingEntry:
		return v.validateShipping(ctx, value, fields...)
	case *models.ShippingEntry:
		return v.validateShipping(ctx, *value, fields...)

	case models.AnnualReview:
		return v.validateYear(value.Year, fields...)
	case *models.AnnualReview:
		return v.validateYear(value.Year, fields...)

	case models.YearMemories:
		return v.validateMemories(ctx, value, fields...)
	case *models.YearMemories:
		return v.validateMemories(ctx, *value, fields...)

	case models.Week:
		return v.validateWeek(ctx, value, fields...)
	case *models.Week:
		return v.validateWeek(ctx, *value, fields...)

	case models.Settings:
		return v.validateSettings(ctx, value, fields...)
	case *models.Settings:
		return v.validateSettings(ctx, *value, fields...)

	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ResourceValidator) validateResource(ctx context.Context, resource models.Resource, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldKind, FieldKey, FieldPayload}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if resource.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldKind:
			if !resource.Kind.Valid() {
				return fmt.Errorf("%w: %q", ErrUnknownKind, resource.Kind)
			}
		case FieldKey:
			if err := ValidKey(resource.Kind, resource.Key); err != nil {
				return err
			}
		case FieldPayload:
			if len(resource.Payload) == 0 {
				return ErrEmptyPayload
			}
			if !json.Valid(resource.Payload) {
				return ErrInvalidPayload
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ResourceValidator) validateGoal(ctx context.Context, goal models.Goal, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldTitle, FieldQuarter, FieldProgress}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if !utils.IsUUID(goal.ID) {
				return fmt.Errorf("%w: %q", ErrInvalidGoalID, goal.ID)
			}
		case FieldTitle:
			if strings.TrimSpace(goal.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldQuarter:
			// goals may float without a quarter
			if goal.Quarter != "" && ValidPlanID(goal.Quarter) != nil {
				return fmt.Errorf("%w: %q", ErrInvalidQuarter, goal.Quarter)
			}
		case FieldProgress:
			if goal.Progress < 0 || goal.Progress > 100 {
				return ErrInvalidProgress
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ResourceValidator) validatePlan(ctx context.Context, plan models.QuarterlyPlan, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldStartDate}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if err := ValidPlanID(plan.ID); err != nil {
				return err
			}
		case FieldStartDate:
			if _, err := plan.Anchor(); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidStartDate, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ResourceValidator) validateShipping(ctx context.Context, entry models.ShippingEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDate}
	}

	for _, f := range fields {
		switch f {
		case FieldDate:
			if err := ValidDate(entry.Date); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ResourceValidator) validateYear(year int, fields ...string) error {
	for _, f := range fields {
		if f != FieldYear {
			return ErrUnknownField
		}
	}
	return ValidYear(year)
}

func (v *ResourceValidator) validateMemories(ctx context.Context, memories models.YearMemories, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldYear, FieldDays}
	}

	for _, f := range fields {
		switch f {
		case FieldYear:
			if err := ValidYear(memories.Year); err != nil {
				return err
			}
		case FieldDays:
			for day := range memories.Memories {
				if err := ValidDayKey(day); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ResourceValidator) validateWeek(ctx context.Context, week models.Week, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKey, FieldDays, FieldStartingHour}
	}

	for _, f := range fields {
		switch f {
		case FieldKey:
			if err := ValidWeekKey(week.Key); err != nil {
				return err
			}
		case FieldDays:
			if len(week.Days) > models.DaysPerWeek {
				return ErrTooManyDays
			}
		case FieldStartingHour:
			if week.StartingHour < 0 || week.StartingHour > 23 {
				return ErrInvalidHour
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ResourceValidator) validateSettings(ctx context.Context, settings models.Settings, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStartingHour}
	}

	for _, f := range fields {
		switch f {
		case FieldStartingHour:
			if settings.StartingHour < 0 || settings.StartingHour > 23 {
				return ErrInvalidHour
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ResourceValidator) validateUser(ctx context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if strings.TrimSpace(user.Login) == "" {
				return ErrEmptyLogin
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
