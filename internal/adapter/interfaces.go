// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The doc-manager Authors

// Package adapter provides a typed Go client for the document manager JSON
// API.
//
// The client keeps the session cookie in its cookie jar, so a successful
// Signup or Login authenticates every following call. Non-2xx responses
// are mapped by mapHTTPError to the sentinel errors in errors.go, wrapped
// together with the server's message, so callers can use [errors.Is]
// (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"io"

	"github.com/vijaycharanme-code/doc-manager/models"
)

// Client defines the calls of the document manager API.
type Client interface {
	// Signup creates an account and logs it in.
	Signup(ctx context.Context, req models.SignupRequest) (models.UserInfo, error)

	// Login opens a session for username.
	Login(ctx context.Context, username, password string) (models.UserInfo, error)

	// Logout ends the current session. It succeeds without a session too.
	Logout(ctx context.Context) error

	// Me returns the current user; ok is false for anonymous clients.
	Me(ctx context.Context) (user models.UserInfo, ok bool, err error)

	// Stats returns the dashboard summary of the current user.
	Stats(ctx context.Context) (models.Stats, error)

	// ListDocuments returns the documents of the current user, newest first.
	ListDocuments(ctx context.Context) ([]models.DocumentView, error)

	// AddLink registers an external document link.
	AddLink(ctx context.Context, req models.AddLinkRequest) error

	// Upload sends req.Content as a multipart file named req.FileName.
	// req.UserID is ignored; the session decides the owner.
	Upload(ctx context.Context, req models.UploadRequest) error

	// DeleteDocument removes a document and its stored file.
	DeleteDocument(ctx context.Context, documentID int64) error

	// Download writes the stored file to w and returns its original name.
	Download(ctx context.Context, documentID int64, w io.Writer) (string, error)

	// Version returns the server version.
	Version(ctx context.Context) (string, error)

	// Health reports whether the server and its database are up.
	Health(ctx context.Context) error
}
