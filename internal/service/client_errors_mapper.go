// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/jeremy-dai/hi-time-sub000/internal/adapter"
	"github.com/jeremy-dai/hi-time-sub000/internal/app"
	"github.com/jeremy-dai/hi-time-sub000/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := responseBody(err)

	switch {
	case errors.Is(err, adapter.ErrNoCredential), errors.Is(err, adapter.ErrUnauthenticated):
		return ErrNotSignedIn

	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgInvalidWeekKey, app.MsgInvalidDate, app.MsgInvalidYear, app.MsgInvalidPlanID, app.MsgInvalidGoalID:
			return ErrInvalidKey
		case app.MsgInvalidGoal:
			return ErrInvalidResource
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidLoginPassword:
			return ErrWrongPassword
		case app.MsgTokenIsExpiredOrInvalid, app.MsgNoTokenProvided:
			return ErrTokenIsExpiredOrInvalid
		}

	case errors.Is(err, adapter.ErrNotFound):
		return ErrResourceNotFound

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgLoginAlreadyExists {
			return store.ErrLoginAlreadyExists
		}

	case errors.Is(err, adapter.ErrBadGateway):
		switch msg {
		case app.MsgRegistrationFailed:
			return ErrRegisterOnServer
		case app.MsgLoginFailed:
			return ErrLoginOnServer
		}
	}

	return err
}

// responseBody returns the server's error message carried by err, if any.
func responseBody(err error) string {
	var reqErr *adapter.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Body
	}
	return ""
}
