// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The doc-manager Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/vijaycharanme-code/doc-manager/internal/logger"
	"github.com/vijaycharanme-code/doc-manager/internal/metrics"
	"github.com/vijaycharanme-code/doc-manager/internal/store"
	"github.com/vijaycharanme-code/doc-manager/internal/utils"
	"github.com/vijaycharanme-code/doc-manager/internal/validators"
	"github.com/vijaycharanme-code/doc-manager/models"
)

type documentService struct {
	documentRepository store.DocumentRepository
	fileStorage        store.FileStorage

	now func() time.Time

	logger *logger.Logger
}

// NewDocumentService constructs the bare DocumentService. Request
// validation is added by wrapping it with NewDocumentValidationService.
func NewDocumentService(documentRepository store.DocumentRepository, fileStorage store.FileStorage, logger *logger.Logger) DocumentService {
	logger.Debug().Msg("creating document service")

	return &documentService{
		documentRepository: documentRepository,
		fileStorage:        fileStorage,
		now:                time.Now,
		logger:             logger,
	}
}

// AddLink stores an external link document. The link is not fetched or
// checked for reachability.
func (d *documentService) AddLink(ctx context.Context, req models.AddLinkRequest) (models.Document, error) {
	log := logger.FromContext(ctx)

	doc, err := d.documentRepository.SaveDocument(ctx, models.Document{
		UserID:      req.UserID,
		Name:        req.Name,
		Link:        req.Link,
		FileType:    models.FileTypeGoogleDoc,
		Category:    req.Category,
		Tags:        req.Tags,
		Description: req.Description,
		CreatedAt:   d.now().UTC(),
	})
	if err != nil {
		log.Err(err).Int64("user_id", req.UserID).Msg("link document saving failed")
		return models.Document{}, fmt.Errorf("link document saving failed: %w", err)
	}

	metrics.RecordDocumentCreated(metrics.KindLink, 0)
	log.Info().Int64("user_id", req.UserID).Int64("document_id", doc.ID).Msg("link document added")

	return doc, nil
}

// Upload sanitizes the file name, stores the content in the user folder
// and records the document. The extension allow-list is checked again on
// the sanitized name, since sanitizing can strip the extension ("/.txt"
// becomes "txt"). The display name is the sanitized name without its
// extension.
func (d *documentService) Upload(ctx context.Context, req models.UploadRequest) (models.Document, error) {
	log := logger.FromContext(ctx)

	if req.Content == nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrNoFileProvided)
	}

	fileName := utils.SecureFilename(req.FileName)
	if fileName == "" {
		metrics.RecordUploadRejected("file_name")
		return models.Document{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidFileName)
	}

	fileType, err := validators.CheckFileName(fileName)
	if err != nil {
		metrics.RecordUploadRejected("extension")
		return models.Document{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	stored, err := d.fileStorage.Save(ctx, req.UserID, fileName, req.Content)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			metrics.RecordUploadRejected("size")
			return models.Document{}, fmt.Errorf("%w: limit is %d bytes", ErrFileTooLarge, maxBytesErr.Limit)
		}
		log.Err(err).Int64("user_id", req.UserID).Str("file_name", fileName).Msg("file saving failed")
		return models.Document{}, fmt.Errorf("file saving failed: %w", err)
	}

	name, _, _ := utils.SplitExtension(stored.Name)

	size := stored.Size
	doc, err := d.documentRepository.SaveDocument(ctx, models.Document{
		UserID:           req.UserID,
		Name:             name,
		OriginalFilename: stored.Name,
		FilePath:         stored.Path,
		FileType:         fileType,
		FileSize:         &size,
		Category:         req.Category,
		Tags:             req.Tags,
		Description:      req.Description,
		CreatedAt:        d.now().UTC(),
	})
	if err != nil {
		// The stored file is kept: a same-named upload may already
		// reference it.
		log.Err(err).Int64("user_id", req.UserID).Str("path", stored.Path).Msg("file document saving failed")
		return models.Document{}, fmt.Errorf("file document saving failed: %w", err)
	}

	metrics.RecordDocumentCreated(metrics.KindFile, size)
	log.Info().
		Int64("user_id", req.UserID).
		Int64("document_id", doc.ID).
		Int64("size", size).
		Msg("file uploaded")

	return doc, nil
}

func (d *documentService) List(ctx context.Context, userID int64) ([]models.DocumentView, error) {
	docs, err := d.documentRepository.ListDocuments(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("documents listing failed")
		return nil, fmt.Errorf("documents listing failed: %w", err)
	}

	views := make([]models.DocumentView, 0, len(docs))
	for _, doc := range docs {
		views = append(views, newDocumentView(doc))
	}

	return views, nil
}

func (d *documentService) Get(ctx context.Context, req models.DocumentRequest) (models.Document, error) {
	doc, err := d.documentRepository.GetDocument(ctx, req.UserID, req.DocumentID)
	if errors.Is(err, store.ErrDocumentNotFound) {
		return models.Document{}, fmt.Errorf("%w: id %d", ErrDocumentNotFound, req.DocumentID)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("user_id", req.UserID).
			Int64("document_id", req.DocumentID).
			Msg("document search failed")
		return models.Document{}, fmt.Errorf("document search failed: %w", err)
	}

	return doc, nil
}

// Download reports missing documents, link documents and missing files
// uniformly as ErrFileNotFound.
func (d *documentService) Download(ctx context.Context, req models.DocumentRequest) (models.Document, *store.StoredObject, error) {
	log := logger.FromContext(ctx)

	doc, err := d.Get(ctx, req)
	if errors.Is(err, ErrDocumentNotFound) {
		return models.Document{}, nil, fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	if err != nil {
		return models.Document{}, nil, err
	}

	if !doc.IsLocalFile() {
		return models.Document{}, nil, fmt.Errorf("%w: document %d has no stored file", ErrFileNotFound, doc.ID)
	}

	obj, err := d.fileStorage.Open(ctx, doc.FilePath)
	if errors.Is(err, store.ErrFileNotFound) {
		log.Warn().Int64("document_id", doc.ID).Str("path", doc.FilePath).Msg("stored file is missing")
		return models.Document{}, nil, fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	if err != nil {
		log.Err(err).Int64("document_id", doc.ID).Str("path", doc.FilePath).Msg("stored file opening failed")
		return models.Document{}, nil, fmt.Errorf("stored file opening failed: %w", err)
	}

	return doc, obj, nil
}

// Delete removes the stored file before the record. The two steps are not
// atomic: when the record deletion fails the file is already gone.
func (d *documentService) Delete(ctx context.Context, req models.DocumentRequest) error {
	log := logger.FromContext(ctx)

	doc, err := d.Get(ctx, req)
	if err != nil {
		return err
	}

	if doc.IsLocalFile() {
		if err = d.fileStorage.Delete(ctx, doc.FilePath); err != nil {
			log.Err(err).Int64("document_id", doc.ID).Str("path", doc.FilePath).Msg("stored file deletion failed")
			return fmt.Errorf("stored file deletion failed: %w", err)
		}
	}

	err = d.documentRepository.DeleteDocument(ctx, req.UserID, req.DocumentID)
	if errors.Is(err, store.ErrDocumentNotFound) {
		return fmt.Errorf("%w: id %d", ErrDocumentNotFound, req.DocumentID)
	}
	if err != nil {
		log.Err(err).Int64("document_id", doc.ID).Msg("document deletion failed")
		return fmt.Errorf("document deletion failed: %w", err)
	}

	metrics.DocumentsDeletedTotal.Inc()
	log.Info().Int64("user_id", req.UserID).Int64("document_id", doc.ID).Msg("document deleted")

	return nil
}

func newDocumentView(doc models.Document) models.DocumentView {
	var sizeFormatted string
	if doc.Size() > 0 {
		sizeFormatted = utils.FormatFileSize(doc.Size())
	}

	return models.DocumentView{
		ID:                doc.ID,
		Name:              doc.Name,
		OriginalFilename:  doc.OriginalFilename,
		GoogleDocLink:     doc.Link,
		FilePath:          doc.FilePath,
		FileType:          doc.FileType,
		FileSize:          doc.FileSize,
		FileSizeFormatted: sizeFormatted,
		Category:          doc.Category,
		Tags:              doc.Tags,
		Description:       doc.Description,
		CreatedAt:         doc.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}
