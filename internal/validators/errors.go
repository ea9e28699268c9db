package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUnknownKind      = errors.New("unknown resource kind")
	ErrInvalidKey       = errors.New("invalid resource key")
	ErrEmptyPayload     = errors.New("payload is required")
	ErrInvalidPayload   = errors.New("payload is not valid JSON")
	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidWeekKey   = errors.New("invalid week key")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidYear      = errors.New("invalid year")
	ErrInvalidPlanID    = errors.New("invalid plan id")
	ErrInvalidStartDate = errors.New("invalid plan start date")
	ErrInvalidGoalID    = errors.New("invalid goal id")
	ErrEmptyTitle       = errors.New("title is required")
	ErrInvalidProgress  = errors.New("progress must be between 0 and 100")
	ErrInvalidQuarter   = errors.New("invalid quarter")
	ErrInvalidHour      = errors.New("starting hour must be between 0 and 23")
	ErrTooManyDays      = errors.New("a week has at most 7 days")
	ErrInvalidDayKey    = errors.New("invalid memory day key")
	ErrEmptyLogin       = errors.New("login is required")
	ErrEmptyPassword    = errors.New("password is required")
)
