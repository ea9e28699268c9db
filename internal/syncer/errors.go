package syncer

import "errors"

var (
	// ErrAbsent is returned by a Load capability when the server confirmed
	// that the resource does not exist. Any other error is a failed fetch.
	ErrAbsent = errors.New("resource absent")

	ErrInvalidEngine = errors.New("invalid engine configuration")
)
