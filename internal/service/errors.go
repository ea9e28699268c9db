package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrWrongPassword           = errors.New("wrong password")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrVersionIsNotSpecified   = errors.New("version is not specified")

	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
	ErrNotSignedIn      = errors.New("not signed in")

	ErrResourceNotFound = errors.New("resource not found")
	ErrInvalidResource  = errors.New("invalid resource")
	ErrInvalidKey       = errors.New("invalid resource key")
)

// ValidationError rejects a user-supplied document before anything is
// written. Message is meant to be shown to the user as is.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
