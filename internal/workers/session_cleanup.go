package workers

import (
	"context"
	"time"

	"github.com/vijaycharanme-code/doc-manager/internal/logger"
	"github.com/vijaycharanme-code/doc-manager/internal/metrics"
)

// sessionCleanupWorker purges expired sessions every interval.
type sessionCleanupWorker struct {
	sessions SessionCleaner
	interval time.Duration
	logger   *logger.Logger
}

func newSessionCleanupWorker(sessions SessionCleaner, interval time.Duration, logger *logger.Logger) *sessionCleanupWorker {
	return &sessionCleanupWorker{sessions: sessions, interval: interval, logger: logger}
}

func (w *sessionCleanupWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.cleanup(ctx)
		}
	}
}

func (w *sessionCleanupWorker) cleanup(ctx context.Context) {
	n, err := w.sessions.CleanupExpired(ctx)
	if err != nil {
		w.logger.Err(err).Str("func", "*sessionCleanupWorker.cleanup").Msg("error cleaning up sessions")
		return
	}
	if n > 0 {
		metrics.SessionsCleanedTotal.Add(float64(n))
		w.logger.Info().Int("removed", n).Msg("expired sessions removed")
	}
}
