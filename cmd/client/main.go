package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jeremy-dai/hi-time-sub000/internal/adapter"
	"github.com/jeremy-dai/hi-time-sub000/internal/client"
	"github.com/jeremy-dai/hi-time-sub000/internal/config"
	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/internal/service"
	"github.com/jeremy-dai/hi-time-sub000/internal/store"
	"github.com/jeremy-dai/hi-time-sub000/internal/tui"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, so the client logs to a file.
	log := logger.NewFileLogger("hi-time-client", cfg.LogFile)
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	services := service.NewClientServices(storages, serverAdapter, cfg.Sync, log)
	ui := tui.New(services, buildInfo, log)

	app, err := client.NewApp(services, ui, cfg.Sync, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "hi-time: %v\n", err)
	}
}
