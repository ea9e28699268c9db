package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jeremy-dai/hi-time-sub000/internal/config"
	"github.com/jeremy-dai/hi-time-sub000/internal/handler"
	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/internal/server"
	"github.com/jeremy-dai/hi-time-sub000/internal/service"
	"github.com/jeremy-dai/hi-time-sub000/internal/store"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("hi-time-server")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	if cfg.App.Version != "" {
		buildInfo.Version = cfg.App.Version
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg.App, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
