package workers

import (
	"context"
	"time"

	"github.com/vijaycharanme-code/doc-manager/internal/logger"
)

// folderRepairWorker makes sure every registered user has an upload folder.
// It sweeps once on start and then every interval; a zero interval means
// the startup sweep only.
type folderRepairWorker struct {
	folders  FolderRepairer
	interval time.Duration
	logger   *logger.Logger
}

func newFolderRepairWorker(folders FolderRepairer, interval time.Duration, logger *logger.Logger) *folderRepairWorker {
	return &folderRepairWorker{folders: folders, interval: interval, logger: logger}
}

// Run never fails: a sweep error is logged and retried on the next tick.
func (w *folderRepairWorker) Run(ctx context.Context) error {
	w.sweep(ctx)
	if w.interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *folderRepairWorker) sweep(ctx context.Context) {
	n, err := w.folders.RepairAll(ctx)
	if err != nil {
		w.logger.Err(err).Str("func", "*folderRepairWorker.sweep").Int("checked", n).Msg("folder repair finished with errors")
		return
	}
	w.logger.Debug().Int("checked", n).Msg("user folders checked")
}
