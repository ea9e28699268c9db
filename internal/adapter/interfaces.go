// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the hi-time REST API.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services and the sync engines from the underlying protocol. Error values
// defined in errors.go are mapped from HTTP status codes by mapHTTPError so
// that callers can use [errors.Is] for transport-agnostic error handling
// (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/jeremy-dai/hi-time-sub000/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// TokenSource supplies the bearer token attached to authenticated requests.
// An empty token means the user is logged out.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// ServerAdapter defines communication with the hi-time server.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetTokenSource installs the source of bearer tokens. Until one is set
	// every authenticated call behaves as logged out.
	SetTokenSource(tokens TokenSource)

	// Register creates an account and returns the issued bearer token.
	Register(ctx context.Context, user models.User) (string, error)

	// Login authenticates the user and returns the issued bearer token.
	Login(ctx context.Context, user models.User) (string, error)

	// Version returns the server build information. No token is needed.
	Version(ctx context.Context) (models.AppBuildInfo, error)

	// Fetch GETs path and decodes the JSON body into out. A missing token
	// yields [ErrUnauthenticated]; a 404 yields an error wrapping
	// [ErrNotFound].
	Fetch(ctx context.Context, path string, out any) error

	// Store PUTs in to path and decodes the response into out when out is
	// not nil. A missing token yields [ErrNoCredential] before any I/O.
	Store(ctx context.Context, path string, in, out any) error

	// Create POSTs in to path and decodes the response into out when out is
	// not nil. A missing token yields [ErrNoCredential] before any I/O.
	Create(ctx context.Context, path string, in, out any) error

	// Remove DELETEs path. A missing token yields [ErrNoCredential] before
	// any I/O.
	Remove(ctx context.Context, path string) error
}
