package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned for unknown usernames and wrong
	// passwords alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")

	ErrDocumentNotFound = errors.New("document not found")
	ErrFileNotFound     = errors.New("file not found")

	// ErrFileTooLarge is returned when an upload exceeds the request body limit.
	ErrFileTooLarge = errors.New("file is too large")

	ErrSessionCreationFailed = errors.New("session creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
