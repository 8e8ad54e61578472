package workers

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vijaycharanme-code/doc-manager/internal/config"
	"github.com/vijaycharanme-code/doc-manager/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the worker group. The session cleanup is skipped when
// its interval is zero; the folder repair always runs at least once.
func NewWorkers(folders FolderRepairer, sessions SessionCleaner, cfg config.Workers, logger *logger.Logger) *Workers {
	logger.Debug().Msg("creating workers")

	ws := &Workers{}
	ws.workers = append(ws.workers, newFolderRepairWorker(folders, cfg.FolderRepairInterval, logger))
	if cfg.SessionCleanupInterval > 0 {
		ws.workers = append(ws.workers, newSessionCleanupWorker(sessions, cfg.SessionCleanupInterval, logger))
	}

	return ws
}

// Run starts every worker and waits for all of them. The first error
// cancels the others.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("worker stopped: %w", err)
	}
	return nil
}
