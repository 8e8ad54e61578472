// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The doc-manager Authors

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/vijaycharanme-code/doc-manager/internal/logger"
	"github.com/vijaycharanme-code/doc-manager/models"
)

// sessionKeyPrefix namespaces session entries in the badger keyspace.
const sessionKeyPrefix = "session:"

// badgerSessionStore is a durable [SessionStore] keeping JSON encoded
// sessions in BadgerDB, so logins survive restarts. Entries carry a badger
// TTL matching the session expiry.
type badgerSessionStore struct {
	db     *badger.DB
	logger *logger.Logger
}

// NewBadgerSessionStore opens (or creates) a badger database in dir.
// An empty dir opens an in-memory database.
func NewBadgerSessionStore(dir string, logger *logger.Logger) (SessionStore, error) {
	logger.Debug().Str("dir", dir).Msg("creating badger session store")

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("error opening session store: %w", err)
	}

	return &badgerSessionStore{
		db:     db,
		logger: logger,
	}, nil
}

func sessionKey(token string) []byte {
	return []byte(sessionKeyPrefix + token)
}

func (s *badgerSessionStore) Create(ctx context.Context, session models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	entry := badger.NewEntry(sessionKey(session.Token), data)
	if !session.ExpiresAt.IsZero() {
		ttl := time.Until(session.ExpiresAt)
		if ttl <= 0 {
			return nil
		}
		entry = entry.WithTTL(ttl)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.SetEntry(entry); err != nil {
			return fmt.Errorf("set session: %w", err)
		}
		return nil
	})
}

func (s *badgerSessionStore) Get(ctx context.Context, token string) (models.Session, error) {
	var session models.Session

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey(token))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrSessionNotFound
		}
		if err != nil {
			return fmt.Errorf("get session: %w", err)
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &session)
		})
	})
	if err != nil {
		return models.Session{}, err
	}

	// badger drops entries lazily, so check expiry ourselves
	if session.IsExpired() {
		_ = s.Delete(ctx, token)
		return models.Session{}, ErrSessionExpired
	}

	return session, nil
}

func (s *badgerSessionStore) Delete(ctx context.Context, token string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(sessionKey(token)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete session: %w", err)
		}
		return nil
	})
}

// CleanupExpired removes sessions whose expiry passed but whose badger TTL
// has not been collected yet, then runs value log garbage collection.
func (s *badgerSessionStore) CleanupExpired(ctx context.Context) (int, error) {
	var expired []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(sessionKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var session models.Session
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &session)
			})
			if err != nil {
				continue
			}

			if session.IsExpired() {
				expired = append(expired, session.Token)
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("scan sessions: %w", err)
	}

	count := 0
	for _, token := range expired {
		if err = s.Delete(ctx, token); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*badgerSessionStore.CleanupExpired").Msg("failed to delete expired session")
			continue
		}
		count++
	}

	// ErrNoRewrite only means there was nothing to collect
	if gcErr := s.db.RunValueLogGC(0.5); gcErr != nil && !errors.Is(gcErr, badger.ErrNoRewrite) && !errors.Is(gcErr, badger.ErrGCInMemoryMode) {
		logger.FromContext(ctx).Warn().Err(gcErr).Msg("session store value log gc failed")
	}

	return count, nil
}

func (s *badgerSessionStore) Close() error {
	return s.db.Close()
}
