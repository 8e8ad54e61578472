// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The doc-manager Authors

package models

import "time"

const (
	// FileTypeGoogleDoc is the file type label stored for external link documents.
	FileTypeGoogleDoc = "google_doc"

	// DefaultCategory is assigned when a document is created without a category.
	DefaultCategory = "General"
)

// Document is a record owned by exactly one user. A document is either an
// external link (Link set, FilePath empty) or a locally stored file
// (FilePath and FileSize set, Link empty).
type Document struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"-"`
	Name             string    `json:"name"`
	OriginalFilename string    `json:"original_filename,omitempty"`
	Link             string    `json:"google_doc_link,omitempty"`
	FilePath         string    `json:"file_path,omitempty"`
	FileType         string    `json:"file_type"`
	FileSize         *int64    `json:"file_size"`
	Category         string    `json:"category"`
	Tags             string    `json:"tags,omitempty"`
	Description      string    `json:"description"`
	CreatedAt        time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Document model.
func (d Document) TableName() string {
	return "documents"
}

// IsLocalFile reports whether the document is backed by a stored file.
func (d Document) IsLocalFile() bool {
	return d.FilePath != ""
}

// Size returns the stored byte size, treating a missing size as zero.
func (d Document) Size() int64 {
	if d.FileSize == nil {
		return 0
	}
	return *d.FileSize
}

// DocumentView is the list representation of a document returned by
// GET /api/documents.
type DocumentView struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	OriginalFilename  string `json:"original_filename,omitempty"`
	GoogleDocLink     string `json:"google_doc_link"`
	FilePath          string `json:"file_path"`
	FileType          string `json:"file_type"`
	FileSize          *int64 `json:"file_size"`
	FileSizeFormatted string `json:"file_size_formatted"`
	Category          string `json:"category"`
	Tags              string `json:"tags,omitempty"`
	Description       string `json:"description"`
	CreatedAt         string `json:"created_at"`
}

// StoredFile describes a file persisted by a file storage backend.
type StoredFile struct {
	// Path is the storage key relative to the upload root,
	// e.g. "user_7/report.pdf".
	Path string

	// Name is the sanitized file name the file was stored under.
	Name string

	// Size is the number of bytes written.
	Size int64
}
