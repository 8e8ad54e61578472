package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/vijaycharanme-code/doc-manager/internal/config"
	"github.com/vijaycharanme-code/doc-manager/internal/logger"
)

// Storages groups every storage component the service layer depends on.
type Storages struct {
	DB                 *DB
	UserRepository     UserRepository
	DocumentRepository DocumentRepository
	StatsRepository    StatsRepository
	FileStorage        FileStorage
	SessionStore       SessionStore
}

// NewStorages connects to the database, applies migrations and builds the
// file storage and session store selected by cfg. On error everything
// opened so far is closed again.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectDB(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	fileStorage, err := newFileStorage(ctx, cfg.Files, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	sessionStore, err := newSessionStore(cfg.Sessions, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		DB:                 db,
		UserRepository:     NewUserRepository(db, logger),
		DocumentRepository: NewDocumentRepository(db, logger),
		StatsRepository:    NewStatsRepository(db, logger),
		FileStorage:        fileStorage,
		SessionStore:       sessionStore,
	}, nil
}

func newFileStorage(ctx context.Context, cfg config.Files, logger *logger.Logger) (FileStorage, error) {
	switch cfg.Backend {
	case config.FilesBackendS3:
		client, err := NewS3Client(ctx, cfg.S3)
		if err != nil {
			return nil, fmt.Errorf("s3 client error: %w", err)
		}
		return NewS3FileStorage(client, cfg.S3.Bucket, logger), nil
	default:
		storage, err := NewLocalFileStorage(cfg.UploadDir, logger)
		if err != nil {
			return nil, fmt.Errorf("file storage error: %w", err)
		}
		return storage, nil
	}
}

func newSessionStore(cfg config.Sessions, logger *logger.Logger) (SessionStore, error) {
	switch cfg.Backend {
	case config.SessionsBackendBadger:
		sessions, err := NewBadgerSessionStore(cfg.Dir, logger)
		if err != nil {
			return nil, fmt.Errorf("session store error: %w", err)
		}
		return sessions, nil
	default:
		return NewMemorySessionStore(), nil
	}
}

// Close closes the session store and the database.
func (s *Storages) Close() error {
	var errs []error
	if s.SessionStore != nil {
		errs = append(errs, s.SessionStore.Close())
	}
	if s.DB != nil {
		errs = append(errs, s.DB.Close())
	}

	return errors.Join(errs...)
}
