package handler

import (
	"github.com/vijaycharanme-code/doc-manager/internal/config"
	"github.com/vijaycharanme-code/doc-manager/internal/handler/http"
	"github.com/vijaycharanme-code/doc-manager/internal/logger"
	"github.com/vijaycharanme-code/doc-manager/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, pinger http.Pinger, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, pinger, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
