package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrTransport wraps network level failures (DNS, refused connection,
	// timeouts) where no HTTP response was received.
	ErrTransport = errors.New("transport error")

	// ErrNoCredential is returned by write calls made without a token. No
	// request is sent.
	ErrNoCredential = errors.New("no credential available")
	// ErrUnauthenticated is returned by read calls made without a token.
	ErrUnauthenticated = errors.New("not authenticated")
)

// RequestError describes a non-2xx response of the REST server.
type RequestError struct {
	Method     string
	Endpoint   string
	StatusCode int
	Body       string
	Err        error
}

func (e *RequestError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: %d: %v", e.Method, e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %d: %v: %s", e.Method, e.Endpoint, e.StatusCode, e.Err, e.Body)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a 404 response, the server's way of
// saying a resource does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
