package server

// Server is the REST server of hi-time.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT, then shuts down
	// gracefully. A listen or serve failure is returned.
	RunServer() error

	Shutdown()
}
