// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// hi-time server handlers, the client services and the terminal UI.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies, shown to the user or logged to describe the outcome
// of an operation. Keeping them in one place keeps the wording consistent
// between the server and the client that matches on it.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoTokenProvided is returned when a protected route is called
	// without an Authorization header.
	MsgNoTokenProvided = "no token provided"

	// MsgRegistrationFailed is returned when the registration handler
	// encounters an unexpected error that prevents account creation.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents issuing a session token.
	MsgLoginFailed = "login failed"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgResourceNotFound is returned for a resource the user never stored
	// or deleted. Clients treat it as "confirmed absent".
	MsgResourceNotFound = "resource not found"

	// MsgInvalidWeekKey is returned for week keys not in YYYY-Www form.
	MsgInvalidWeekKey = "invalid week key"

	// MsgInvalidDate is returned for shipping dates that are not real
	// calendar days.
	MsgInvalidDate = "invalid date"

	// MsgInvalidYear is returned for years outside the supported range.
	MsgInvalidYear = "invalid year"

	// MsgInvalidPlanID is returned for plan ids not in YYYY-Qn form.
	MsgInvalidPlanID = "invalid plan id"

	// MsgInvalidGoal is returned for goals without a title or with a
	// progress outside 0..100.
	MsgInvalidGoal = "invalid goal"

	// MsgInvalidGoalID is returned for goal ids that are not UUIDs.
	MsgInvalidGoalID = "invalid goal id"

	// MsgPlanAnchorMissing is shown when an imported plan has no usable
	// start date.
	MsgPlanAnchorMissing = "the plan needs a start date in YYYY-MM-DD format"

	// MsgPlanNotJSON is shown when an imported plan is not valid JSON.
	MsgPlanNotJSON = "the file is not a valid plan export"

	// MsgNotSignedIn is shown when a change cannot be sent because nobody
	// is signed in.
	MsgNotSignedIn = "sign in to sync your changes"
)
