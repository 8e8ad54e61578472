package service

import (
	"context"

	"github.com/vijaycharanme-code/doc-manager/internal/store"
	"github.com/vijaycharanme-code/doc-manager/models"
)

// AuthService owns accounts and sessions. A session token is the only
// thing a client holds; every protected call resolves it with CurrentUser.
type AuthService interface {
	// Register creates an account and opens a session for it.
	Register(ctx context.Context, req models.SignupRequest) (models.User, models.Session, error)

	// Login verifies credentials and opens a session. Unknown usernames and
	// wrong passwords both return ErrInvalidCredentials.
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.Session, error)

	// Logout closes the session. It is idempotent.
	Logout(ctx context.Context, token string) error

	// CurrentUser returns ErrNotAuthenticated for missing, unknown or
	// expired tokens.
	CurrentUser(ctx context.Context, token string) (models.User, error)
}

// DocumentService is the document registry of a user library.
type DocumentService interface {
	AddLink(ctx context.Context, req models.AddLinkRequest) (models.Document, error)
	Upload(ctx context.Context, req models.UploadRequest) (models.Document, error)

	// List returns the documents of userID, newest first.
	List(ctx context.Context, userID int64) ([]models.DocumentView, error)

	// Get returns ErrDocumentNotFound for missing and foreign documents alike.
	Get(ctx context.Context, req models.DocumentRequest) (models.Document, error)

	// Download opens the stored file of a local-file document. The caller
	// closes the returned object. Link documents return ErrFileNotFound.
	Download(ctx context.Context, req models.DocumentRequest) (models.Document, *store.StoredObject, error)

	// Delete removes the stored file first and the record second.
	Delete(ctx context.Context, req models.DocumentRequest) error
}

// StatsService computes the dashboard summary of a user.
type StatsService interface {
	GetStats(ctx context.Context, userID int64) (models.Stats, error)
}

// FolderService keeps one storage folder per user.
type FolderService interface {
	// EnsureFolders creates the folders of userIDs. It is idempotent.
	EnsureFolders(ctx context.Context, userIDs ...int64) error

	// RepairAll ensures the folder of every registered user and returns
	// the number of users processed.
	RepairAll(ctx context.Context) (int, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper defines middleware composition for AuthService.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// DocumentServiceWrapper defines middleware composition for DocumentService.
// Implementations wrap an existing DocumentService to add behavior such as
// validation.
type DocumentServiceWrapper interface {
	Wrap(DocumentService) DocumentService // returns a decorated DocumentService applying additional behavior
}
