// Package server runs the REST transport of the hi-time backend.
//
// It owns the http.Server lifecycle: startup, signal handling, and graceful
// shutdown bounded by the configured shutdown timeout.
package server
