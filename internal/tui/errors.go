// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/jeremy-dai/hi-time-sub000/internal/adapter"
	"github.com/jeremy-dai/hi-time-sub000/internal/app"
	"github.com/jeremy-dai/hi-time-sub000/internal/service"
	"github.com/jeremy-dai/hi-time-sub000/internal/store"
)

// humanizeError turns service and transport errors into one line for the
// status bar.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var validation *service.ValidationError
	switch {
	case errors.As(err, &validation):
		return validation.Message
	case errors.Is(err, store.ErrLoginAlreadyExists):
		return "This login is already taken"
	case errors.Is(err, service.ErrWrongPassword):
		return "Wrong login or password"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Login and password are required"
	case errors.Is(err, service.ErrNotSignedIn), errors.Is(err, adapter.ErrNoCredential):
		return app.MsgNotSignedIn
	case errors.Is(err, adapter.ErrTransport):
		return "Server is unreachable, changes are kept locally"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Server is unreachable, changes are kept locally"
	}

	return err.Error()
}
