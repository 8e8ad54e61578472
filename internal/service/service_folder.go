package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vijaycharanme-code/doc-manager/internal/logger"
	"github.com/vijaycharanme-code/doc-manager/internal/metrics"
	"github.com/vijaycharanme-code/doc-manager/internal/store"
)

// folderService creates missing user folders. Every operation is
// idempotent, so it runs at startup, after signup and from the repair
// worker without coordination.
type folderService struct {
	userRepository store.UserRepository
	fileStorage    store.FileStorage

	logger *logger.Logger
}

func NewFolderService(userRepository store.UserRepository, fileStorage store.FileStorage, logger *logger.Logger) FolderService {
	logger.Debug().Msg("creating folder service")

	return &folderService{
		userRepository: userRepository,
		fileStorage:    fileStorage,
		logger:         logger,
	}
}

// EnsureFolders tries every id and returns the joined errors of the
// failed ones.
func (f *folderService) EnsureFolders(ctx context.Context, userIDs ...int64) error {
	var errs []error
	for _, userID := range userIDs {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := f.fileStorage.EnsureUserDirectory(ctx, userID); err != nil {
			errs = append(errs, fmt.Errorf("user %d: %w", userID, err))
		}
	}

	return errors.Join(errs...)
}

func (f *folderService) RepairAll(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	userIDs, err := f.userRepository.ListUserIDs(ctx)
	if err != nil {
		log.Err(err).Msg("listing users failed")
		return 0, fmt.Errorf("listing users failed: %w", err)
	}

	if err = f.EnsureFolders(ctx, userIDs...); err != nil {
		log.Err(err).Int("users", len(userIDs)).Msg("user folders repair failed")
		return len(userIDs), fmt.Errorf("user folders repair failed: %w", err)
	}

	metrics.FoldersRepairedTotal.Add(float64(len(userIDs)))
	log.Info().Int("users", len(userIDs)).Msg("user folders initialized")

	return len(userIDs), nil
}
