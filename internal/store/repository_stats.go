package store

import (
	"context"
	"fmt"

	"github.com/vijaycharanme-code/doc-manager/internal/logger"
	"github.com/vijaycharanme-code/doc-manager/models"
)

type statsRepository struct {
	*DB
	logger *logger.Logger
}

// NewStatsRepository constructs a [StatsRepository] backed by db.
func NewStatsRepository(db *DB, logger *logger.Logger) StatsRepository {
	logger.Debug().Msg("creating stats repository")
	return &statsRepository{
		DB:     db,
		logger: logger,
	}
}

// GetStats runs the totals, both histograms and the recent documents query.
// The queries are independent reads, so concurrent writes may make the
// figures disagree by the documents written in between.
func (s *statsRepository) GetStats(ctx context.Context, userID int64, recentLimit uint64) (models.Stats, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*statsRepository.GetStats").
		Int64("user_id", userID).
		Logger()

	stats := models.Stats{
		FileTypes:       map[string]int64{},
		Categories:      map[string]int64{},
		RecentDocuments: []models.RecentDocument{},
	}

	query, args, err := buildStatsTotalsQuery(s.builder, userID)
	if err != nil {
		return models.Stats{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if err = s.QueryRowContext(ctx, query, args...).Scan(&stats.TotalDocuments, &stats.TotalStorage); err != nil {
		log.Err(err).Msg("failed to query totals")
		return models.Stats{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if stats.FileTypes, err = s.histogram(ctx, userID, groupByFileType); err != nil {
		log.Err(err).Msg("failed to query file type histogram")
		return models.Stats{}, err
	}

	if stats.Categories, err = s.histogram(ctx, userID, groupByCategory); err != nil {
		log.Err(err).Msg("failed to query category histogram")
		return models.Stats{}, err
	}

	if stats.RecentDocuments, err = s.recent(ctx, userID, recentLimit); err != nil {
		log.Err(err).Msg("failed to query recent documents")
		return models.Stats{}, err
	}

	return stats, nil
}

func (s *statsRepository) histogram(ctx context.Context, userID int64, column string) (map[string]int64, error) {
	query, args, err := buildStatsHistogramQuery(s.builder, userID, column)
	if err != nil {
		return nil, err
	}

	rows, err := s.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make(map[string]int64)
	for rows.Next() {
		var (
			label string
			count int64
		)
		if err = rows.Scan(&label, &count); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result[label] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

func (s *statsRepository) recent(ctx context.Context, userID int64, limit uint64) ([]models.RecentDocument, error) {
	query, args, err := buildRecentDocumentsQuery(s.builder, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	recent := make([]models.RecentDocument, 0, limit)
	for rows.Next() {
		var doc models.RecentDocument
		if err = rows.Scan(&doc.Name, &doc.Category); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		recent = append(recent, doc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return recent, nil
}
