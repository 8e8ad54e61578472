package service

import (
	"context"
	"fmt"

	"github.com/vijaycharanme-code/doc-manager/internal/logger"
	"github.com/vijaycharanme-code/doc-manager/internal/store"
	"github.com/vijaycharanme-code/doc-manager/internal/utils"
	"github.com/vijaycharanme-code/doc-manager/models"
)

// RecentDocumentsLimit is the number of newest documents listed in stats.
const RecentDocumentsLimit = 5

type statsService struct {
	statsRepository store.StatsRepository

	logger *logger.Logger
}

func NewStatsService(statsRepository store.StatsRepository, logger *logger.Logger) StatsService {
	logger.Debug().Msg("creating stats service")

	return &statsService{
		statsRepository: statsRepository,
		logger:          logger,
	}
}

// GetStats is computed on every call; nothing is cached.
func (s *statsService) GetStats(ctx context.Context, userID int64) (models.Stats, error) {
	stats, err := s.statsRepository.GetStats(ctx, userID, RecentDocumentsLimit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("stats computation failed")
		return models.Stats{}, fmt.Errorf("stats computation failed: %w", err)
	}

	stats.StorageFormatted = utils.FormatFileSize(stats.TotalStorage)

	return stats, nil
}
