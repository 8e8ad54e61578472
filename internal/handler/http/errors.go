// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The doc-manager Authors

package http

import "errors"

var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidDocumentID is returned when the {id} URL parameter is not
	// a positive integer.
	ErrInvalidDocumentID = errors.New("invalid document id")

	// ErrNoUserInContext is returned by protected handlers reached without
	// the auth middleware.
	ErrNoUserInContext = errors.New("no user ID in request context")
)
