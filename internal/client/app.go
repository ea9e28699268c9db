package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jeremy-dai/hi-time-sub000/internal/config"
	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/internal/service"
	"github.com/jeremy-dai/hi-time-sub000/internal/tui"
)

const healthInterval = 30 * time.Second

type App struct {
	services *service.ClientServices
	ui       UI
	cfg      config.Sync
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, cfg config.Sync, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, ErrNilDependency
	}
	return &App{services: services, ui: ui, cfg: cfg, logger: logger}, nil
}

// Run signs the user in (restoring the saved session when possible), shows
// the main screens and repeats after every sign-out. Pending changes are
// flushed before it returns.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer a.shutdown()

	for {
		if err := a.signIn(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		a.services.HealthJob.Start(ctx, healthInterval)

		logout, err := a.ui.MainLoop(ctx)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		a.flush()
		if err = a.services.SignOut(ctx); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		a.logger.Info().Str("func", "*App.Run").Msg("signed out")
	}
}

func (a *App) signIn(ctx context.Context) error {
	if session, ok := a.services.AuthService.Session(ctx); ok {
		a.logger.Info().Str("func", "*App.signIn").Str("login", session.Login).Msg("session restored")
		return nil
	}
	return a.ui.LoginFlow(ctx)
}

// flush pushes pending changes, bounded by the configured flush timeout.
func (a *App) flush() {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.FlushTimeout)
	defer cancel()

	if err := a.services.Registry.FlushAll(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.flush").Msg("some changes stay pending in the local cache")
	}
}

func (a *App) shutdown() {
	a.flush()
	a.services.Close()
}
