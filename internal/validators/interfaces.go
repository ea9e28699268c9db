// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks hi-time documents before they are stored.
//
// The server runs the same rules in its resource service and the terminal
// client runs them before a value reaches a sync engine, so a value the
// client accepts is never rejected by the server.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator checks a document. With field names given only those fields are
// checked, which the client uses while the user is still typing.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
