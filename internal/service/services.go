package service

import (
	"fmt"

	"github.com/vijaycharanme-code/doc-manager/internal/config"
	"github.com/vijaycharanme-code/doc-manager/internal/logger"
	"github.com/vijaycharanme-code/doc-manager/internal/store"
)

type Services struct {
	AuthService     AuthService
	DocumentService DocumentService
	StatsService    StatsService
	FolderService   FolderService
	AppInfoService  AppInfoService
}

// NewServices builds every service over storages. Auth and document
// services are returned wrapped with their validation decorators.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	folderService := NewFolderService(storages.UserRepository, storages.FileStorage, logger)

	authService := NewAuthValidationService().Wrap(
		NewAuthService(storages.UserRepository, storages.SessionStore, folderService, cfg.App, logger),
	)

	documentService := NewDocumentValidationService().Wrap(
		NewDocumentService(storages.DocumentRepository, storages.FileStorage, logger),
	)

	return &Services{
		AuthService:     authService,
		DocumentService: documentService,
		StatsService:    NewStatsService(storages.StatsRepository, logger),
		FolderService:   folderService,
		AppInfoService:  appInfoService,
	}, nil
}
