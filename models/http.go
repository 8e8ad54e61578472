package models

import "io"

// SignupRequest is the body of POST /api/signup.
type SignupRequest struct {
	Username        string `json:"username" validate:"required,max=80"`
	Email           string `json:"email" validate:"required,email,max=120"`
	Password        string `json:"password" validate:"required,max=72"`
	ConfirmPassword string `json:"confirm_password,omitempty"`

	// PrimaryUse is collected by the signup form but not persisted.
	PrimaryUse string `json:"primary_use,omitempty"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AddLinkRequest is the body of POST /api/documents.
type AddLinkRequest struct {
	// UserID is taken from the session, never from the body.
	UserID int64 `json:"-"`

	Name        string `json:"name" validate:"required,max=200"`
	Link        string `json:"link" validate:"required,max=500"`
	Category    string `json:"category,omitempty" validate:"max=100"`
	Tags        string `json:"tags,omitempty" validate:"max=300"`
	Description string `json:"description,omitempty"`
}

// UploadRequest carries a multipart file upload to the document service.
type UploadRequest struct {
	UserID int64

	// FileName is the client supplied name, not yet sanitized.
	FileName string

	// Content is nil when the multipart form has no "file" part.
	Content io.Reader

	Category    string
	Tags        string
	Description string
}

// DocumentRequest identifies a single document of a user.
type DocumentRequest struct {
	UserID     int64
	DocumentID int64
}
