package server

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"syscall"

	"github.com/jeremy-dai/hi-time-sub000/internal/config"
	"github.com/jeremy-dai/hi-time-sub000/internal/handler"
	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

// run listens on the configured address and serves until ctx is done, then
// shuts down gracefully.
func (s *server) run(ctx context.Context) error {
	if s.httpServer == nil {
		return errNoServersToRun
	}

	l, err := net.Listen("tcp", s.httpServer.server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpServer.server.Addr, err)
	}

	return s.runListener(ctx, l)
}

func (s *server) runListener(ctx context.Context, l net.Listener) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve(l)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("stop signal received, shutting down")
	s.Shutdown()

	if err := <-serveErr; err != nil {
		return err
	}
	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
