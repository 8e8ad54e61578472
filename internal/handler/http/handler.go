package http

import (
	"github.com/vijaycharanme-code/doc-manager/internal/config"
	"github.com/vijaycharanme-code/doc-manager/internal/logger"
	"github.com/vijaycharanme-code/doc-manager/internal/service"
)

type Handler struct {
	services *service.Services

	// pinger checks the database for /healthz. It may be nil.
	pinger Pinger

	app    config.App
	server config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, pinger Pinger, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		pinger:   pinger,
		app:      cfg.App,
		server:   cfg.Server,
		logger:   logger,
	}
}
