// Package workers runs the background jobs of the document manager next to
// the HTTP server: the user folder repair sweep and the expired session
// cleanup.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker has nothing left to do.
// A returned error stops every other worker of the same [Workers] group.
type Worker interface {
	Run(ctx context.Context) error
}

// FolderRepairer recreates missing per user folders.
type FolderRepairer interface {
	RepairAll(ctx context.Context) (int, error)
}

// SessionCleaner purges expired sessions.
type SessionCleaner interface {
	CleanupExpired(ctx context.Context) (int, error)
}
