package main

import (
	"context"
	"fmt"

	"github.com/vijaycharanme-code/doc-manager/internal/config"
	"github.com/vijaycharanme-code/doc-manager/internal/handler"
	"github.com/vijaycharanme-code/doc-manager/internal/logger"
	"github.com/vijaycharanme-code/doc-manager/internal/server"
	"github.com/vijaycharanme-code/doc-manager/internal/service"
	"github.com/vijaycharanme-code/doc-manager/internal/store"
	"github.com/vijaycharanme-code/doc-manager/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("docmanager-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("files", cfg.Storage.Files.Backend).
		Str("sessions", cfg.Storage.Sessions.Backend).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, storages.DB, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	backgroundWorkers := workers.NewWorkers(services.FolderService, storages.SessionStore, cfg.Workers, log)

	srv, err := server.NewServer(handlers, backgroundWorkers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
