// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The doc-manager Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vijaycharanme-code/doc-manager/internal/logger"
	"github.com/vijaycharanme-code/doc-manager/models"
)

// documentRepository is the SQL implementation of [DocumentRepository]
// over the "documents" table. Every read and delete filters by both the
// document ID and the owner ID.
type documentRepository struct {
	*DB
	logger *logger.Logger
}

// NewDocumentRepository constructs a [DocumentRepository] backed by the
// provided database connection and logger.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveDocument inserts doc and returns it with the generated ID.
// An empty category is stored as [models.DefaultCategory] and a zero
// CreatedAt is replaced by the current UTC time.
func (d *documentRepository) SaveDocument(ctx context.Context, doc models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	if doc.Category == "" {
		doc.Category = models.DefaultCategory
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildSaveDocumentQuery(d.builder, doc)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.SaveDocument").Msg("failed to build query")
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = d.QueryRowContext(ctx, query, args...).Scan(&doc.ID); err != nil {
		log.Err(err).
			Str("func", "*documentRepository.SaveDocument").
			Int64("user_id", doc.UserID).
			Msg("failed to insert document")
		return models.Document{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return doc, nil
}

// ListDocuments returns all documents of userID, newest first.
// The result is empty, not nil, when the user has no documents.
func (d *documentRepository) ListDocuments(ctx context.Context, userID int64) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListDocumentsQuery(d.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.ListDocuments").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := d.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*documentRepository.ListDocuments").
			Int64("user_id", userID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	documents := make([]models.Document, 0, 16)
	for rows.Next() {
		doc, scanErr := scanDocument(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*documentRepository.ListDocuments").
				Int64("user_id", userID).
				Int("row", len(documents)).
				Msg("failed to scan document row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		documents = append(documents, doc)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*documentRepository.ListDocuments").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return documents, nil
}

// GetDocument returns the document documentID if it belongs to userID,
// otherwise [ErrDocumentNotFound].
func (d *documentRepository) GetDocument(ctx context.Context, userID, documentID int64) (models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetDocumentQuery(d.builder, userID, documentID)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.GetDocument").Msg("failed to build query")
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	doc, err := scanDocument(d.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Document{}, ErrDocumentNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*documentRepository.GetDocument").
			Int64("user_id", userID).
			Int64("document_id", documentID).
			Msg("failed to scan document")
		return models.Document{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return doc, nil
}

// DeleteDocument removes documentID if it belongs to userID.
// Returns [ErrDocumentNotFound] when no row was deleted.
func (d *documentRepository) DeleteDocument(ctx context.Context, userID, documentID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteDocumentQuery(d.builder, userID, documentID)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.DeleteDocument").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := d.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*documentRepository.DeleteDocument").
			Int64("user_id", userID).
			Int64("document_id", documentID).
			Msg("failed to delete document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.DeleteDocument").Msg("failed to get rows affected")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrDocumentNotFound
	}

	return nil
}
