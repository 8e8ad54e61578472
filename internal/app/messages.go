// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The doc-manager Authors

// Package app contains the user-facing message strings of the document
// manager API.
//
// Every Msg* constant is written into the "message" field of a JSON
// response. Keeping them in one place keeps the wording identical across
// handlers, middleware and the API client.
package app

// Success messages.
const (
	MsgLoginSuccessful   = "Login successful!"
	MsgAccountCreated    = "Account created successfully!"
	MsgLoggedOut         = "Logged out!"
	MsgDocumentAdded     = "Document added!"
	MsgFileUploaded      = "File uploaded!"
	MsgDocumentDeleted   = "Document deleted!"
	MsgDocumentManagerUp = "Document manager API"
)

// Failure messages.
const (
	// MsgInvalidCredentials is shared by unknown usernames and wrong
	// passwords.
	MsgInvalidCredentials = "Invalid credentials!"

	MsgUsernameAlreadyExists = "Username already exists!"
	MsgEmailAlreadyExists    = "Email already registered!"
	MsgPasswordTooLong       = "Password is too long!"

	// MsgLoginRequired is returned by every protected route when the
	// request carries no valid session.
	MsgLoginRequired = "Please log in first"

	MsgInvalidDataProvided = "Invalid data provided!"
	MsgNoFileSelected      = "No file selected!"
	MsgInvalidFileType     = "Invalid file type!"
	MsgFileTooLarge        = "File is too large!"

	MsgDocumentNotFound = "Document not found!"
	MsgFileNotFound     = "File not found!"

	MsgNotFound            = "Not found"
	MsgMethodNotAllowed    = "Method not allowed"
	MsgTooManyRequests     = "Too many requests, try again later"
	MsgInternalServerError = "Internal server error"
)
