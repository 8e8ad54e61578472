// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The doc-manager Authors

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"io"

	"github.com/vijaycharanme-code/doc-manager/models"
)

// UserRepository is the credential store. Username and email uniqueness is
// enforced by the database, not by a prior lookup.
type UserRepository interface {
	// CreateUser inserts user and returns it with ID and CreatedAt set.
	// Returns ErrUsernameAlreadyExists or ErrEmailAlreadyExists on a
	// uniqueness conflict.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns ErrNoUserWasFound when no row matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID returns ErrNoUserWasFound when no row matches.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// ListUserIDs returns the IDs of all users in ascending order.
	ListUserIDs(ctx context.Context) ([]int64, error)
}

// DocumentRepository is the document registry. Every lookup is scoped to
// the owning user.
type DocumentRepository interface {
	// SaveDocument inserts document and returns it with ID set.
	SaveDocument(ctx context.Context, document models.Document) (models.Document, error)

	// ListDocuments returns the documents of userID, newest first.
	ListDocuments(ctx context.Context, userID int64) ([]models.Document, error)

	// GetDocument returns ErrDocumentNotFound unless documentID exists and
	// belongs to userID.
	GetDocument(ctx context.Context, userID, documentID int64) (models.Document, error)

	// DeleteDocument returns ErrDocumentNotFound unless documentID exists
	// and belongs to userID.
	DeleteDocument(ctx context.Context, userID, documentID int64) error
}

// StatsRepository computes per user aggregates over the documents table.
type StatsRepository interface {
	// GetStats returns counts, histograms and total size of the documents
	// of userID together with its recentLimit newest documents.
	// StorageFormatted is left empty.
	GetStats(ctx context.Context, userID int64, recentLimit uint64) (models.Stats, error)
}

// StoredObject is an opened file returned by [FileStorage.Open].
// Callers must close it. When the reader also implements io.Seeker it can
// serve range requests.
type StoredObject struct {
	io.ReadCloser
	Size int64
}

// FileStorage persists uploaded files under one directory (or key prefix)
// per user. Storage keys are relative to the storage root, for example
// "user_7/report.pdf". The storage has no notion of ownership; callers must
// only pass keys read from a document record of the requesting user.
type FileStorage interface {
	// EnsureUserDirectory creates the user folder if it is missing and
	// returns its key. It is idempotent.
	EnsureUserDirectory(ctx context.Context, userID int64) (string, error)

	// Save writes r to the user folder under fileName, replacing an
	// existing file of the same name. fileName must already be sanitized.
	Save(ctx context.Context, userID int64, fileName string, r io.Reader) (models.StoredFile, error)

	// Open returns ErrFileNotFound when key does not exist.
	Open(ctx context.Context, key string) (*StoredObject, error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// SessionStore maps opaque session tokens to users.
type SessionStore interface {
	// Create stores session under session.Token.
	Create(ctx context.Context, session models.Session) error

	// Get returns ErrSessionNotFound for unknown tokens and
	// ErrSessionExpired for expired ones.
	Get(ctx context.Context, token string) (models.Session, error)

	// Delete removes the session. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error

	// CleanupExpired removes all expired sessions and returns their number.
	CleanupExpired(ctx context.Context) (int, error)

	// Close releases resources held by the store.
	Close() error
}
