// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the server, the
// terminal client and the ops tooling: typed context keys, value
// fingerprints, JSON response writing, the resty client wrapper, JWT helpers
// and UUID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so they cannot collide with
// string keys set by other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the auth middleware stores the
// authenticated user's id.
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext retrieves the user identifier from the context.
// ok is false when the value is missing or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
