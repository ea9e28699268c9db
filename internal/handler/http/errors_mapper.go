package http

import (
	"errors"
	"net/http"

	"github.com/jeremy-dai/hi-time-sub000/internal/app"
	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/internal/service"
	"github.com/jeremy-dai/hi-time-sub000/internal/store"
	"github.com/jeremy-dai/hi-time-sub000/internal/utils"
	"github.com/jeremy-dai/hi-time-sub000/internal/validators"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidKey:              http.StatusBadRequest,
	service.ErrInvalidResource:         http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrResourceNotFound:        http.StatusNotFound,
	service.ErrVersionIsNotSpecified:   http.StatusInternalServerError,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	validators.ErrUnknownKind:   http.StatusBadRequest,
	validators.ErrInvalidUserID: http.StatusUnauthorized,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusUnauthorized,
	store.ErrResourceNotFound:   http.StatusNotFound,
	store.ErrResourceNotSaved:   http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// keyMessages is the user-facing message for a malformed key of each kind.
var keyMessages = map[models.ResourceKind]string{
	models.KindWeek:     app.MsgInvalidWeekKey,
	models.KindGoal:     app.MsgInvalidGoalID,
	models.KindPlan:     app.MsgInvalidPlanID,
	models.KindShipping: app.MsgInvalidDate,
	models.KindReview:   app.MsgInvalidYear,
	models.KindMemories: app.MsgInvalidYear,
}

func statusFromError(err error) int {
	// checked first: validation errors also wrap lower level sentinels
	switch {
	case errors.Is(err, service.ErrInvalidKey), errors.Is(err, service.ErrInvalidResource):
		return http.StatusBadRequest
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError picks the message sent in the error body. The client maps
// it back to a service error, so it must stay one of the app constants.
func messageFromError(kind models.ResourceKind, err error, status int) string {
	switch {
	case errors.Is(err, service.ErrInvalidKey):
		if msg, ok := keyMessages[kind]; ok {
			return msg
		}
		return app.MsgInvalidDataProvided
	case errors.Is(err, service.ErrInvalidResource) && kind == models.KindGoal:
		return app.MsgInvalidGoal
	case errors.Is(err, store.ErrLoginAlreadyExists):
		return app.MsgLoginAlreadyExists
	case errors.Is(err, service.ErrWrongPassword), errors.Is(err, store.ErrNoUserWasFound):
		return app.MsgInvalidLoginPassword
	}

	switch status {
	case http.StatusBadRequest:
		return app.MsgInvalidDataProvided
	case http.StatusUnauthorized:
		return app.MsgTokenIsExpiredOrInvalid
	case http.StatusNotFound:
		return app.MsgResourceNotFound
	default:
		return app.MsgInternalServerError
	}
}

// writeServiceError logs err and answers with the mapped status and message.
// Server faults are logged as errors, client faults as warnings.
func writeServiceError(w http.ResponseWriter, r *http.Request, kind models.ResourceKind, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("kind", kind.String()).Int("status", status).Msg("request failed")

	utils.WriteError(w, messageFromError(kind, err, status), status)
}
