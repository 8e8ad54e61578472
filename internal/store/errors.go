package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when a user cannot be created
	// because the username is taken. Raised by the users_username_key
	// unique constraint, so concurrent signups cannot both succeed.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrEmailAlreadyExists is returned when a user cannot be created
	// because the email address is already registered.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrDocumentNotFound is returned when no document matches both the
	// document ID and the owner ID. A document owned by someone else is
	// reported the same way as a missing one.
	ErrDocumentNotFound = errors.New("document was not found")

	// ErrFileNotFound is returned by file storages when the requested
	// storage key does not exist.
	ErrFileNotFound = errors.New("file was not found")

	// ErrInvalidFilePath is returned when a storage key would resolve
	// outside the storage root.
	ErrInvalidFilePath = errors.New("invalid file path")

	// ErrSessionNotFound is returned when the session token is unknown.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrSessionExpired is returned when the session exists but its
	// expiry time has passed. The session is removed as a side effect.
	ErrSessionExpired = errors.New("session expired")

	// ErrUnsupportedDSN is returned when the database DSN scheme matches
	// none of the supported drivers.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
