package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vijaycharanme-code/doc-manager/internal/config"
	"github.com/vijaycharanme-code/doc-manager/internal/logger"
	"github.com/vijaycharanme-code/doc-manager/internal/metrics"
	"github.com/vijaycharanme-code/doc-manager/internal/store"
	"github.com/vijaycharanme-code/doc-manager/internal/utils"
	"github.com/vijaycharanme-code/doc-manager/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt digests; sessions are opaque random
// tokens kept in a SessionStore.
type authService struct {
	userRepository store.UserRepository
	sessionStore   store.SessionStore

	// folderService creates the storage folder of a new account.
	folderService FolderService

	bcryptCost int
	sessionTTL time.Duration

	// now is replaced in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. Session lifetime and bcrypt
// cost come from cfg.
func NewAuthService(
	userRepository store.UserRepository,
	sessionStore store.SessionStore,
	folderService FolderService,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	logger.Debug().Msg("creating auth service")

	return &authService{
		userRepository: userRepository,
		sessionStore:   sessionStore,
		folderService:  folderService,
		bcryptCost:     cfg.BcryptCost,
		sessionTTL:     cfg.SessionTTL,
		now:            time.Now,
		logger:         logger,
	}
}

// Register hashes the password, creates the account and opens a session.
//
// Uniqueness of username and email is left to the database, so a
// duplicate returns store.ErrUsernameAlreadyExists or
// store.ErrEmailAlreadyExists wrapped. A failure to create the user folder
// is logged only; the folder repair sweep creates it later.
func (a *authService) Register(ctx context.Context, req models.SignupRequest) (models.User, models.Session, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Email == "" || req.Password == "" {
		log.Error().Str("username", req.Username).Msg("invalid signup data provided")
		metrics.RecordAuthAttempt(metrics.ActionSignup, false)
		return models.User{}, models.Session{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("password hashing failed")
		return models.User{}, models.Session{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    a.now().UTC(),
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		metrics.RecordAuthAttempt(metrics.ActionSignup, false)
		return models.User{}, models.Session{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	if err = a.folderService.EnsureFolders(ctx, user.ID); err != nil {
		log.Warn().Err(err).Int64("user_id", user.ID).Msg("user folder was not created")
	}

	session, err := a.openSession(ctx, user.ID)
	if err != nil {
		return models.User{}, models.Session{}, err
	}

	metrics.RecordAuthAttempt(metrics.ActionSignup, true)
	log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user registered")

	return user, session, nil
}

// Login compares the password with the stored bcrypt digest. For unknown
// usernames a dummy comparison runs so both failures take similar time.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Session, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Password == "" {
		metrics.RecordAuthAttempt(metrics.ActionLogin, false)
		return models.User{}, models.Session{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		utils.CheckDummyPassword(req.Password)
		log.Info().Str("username", req.Username).Msg("login with unknown username")
		metrics.RecordAuthAttempt(metrics.ActionLogin, false)
		return models.User{}, models.Session{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return models.User{}, models.Session{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		log.Info().Int64("user_id", user.ID).Msg("wrong password")
		metrics.RecordAuthAttempt(metrics.ActionLogin, false)
		return models.User{}, models.Session{}, ErrInvalidCredentials
	}

	session, err := a.openSession(ctx, user.ID)
	if err != nil {
		return models.User{}, models.Session{}, err
	}

	metrics.RecordAuthAttempt(metrics.ActionLogin, true)

	return user, session, nil
}

func (a *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := a.sessionStore.Delete(ctx, token); err != nil {
		logger.FromContext(ctx).Err(err).Msg("session deletion failed")
		return fmt.Errorf("session deletion failed: %w", err)
	}

	return nil
}

// CurrentUser resolves token to its user. A session whose user no longer
// exists is removed.
func (a *authService) CurrentUser(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.User{}, ErrNotAuthenticated
	}

	session, err := a.sessionStore.Get(ctx, token)
	if errors.Is(err, store.ErrSessionNotFound) || errors.Is(err, store.ErrSessionExpired) {
		return models.User{}, fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
	}
	if err != nil {
		log.Err(err).Msg("session lookup failed")
		return models.User{}, fmt.Errorf("session lookup failed: %w", err)
	}

	user, err := a.userRepository.FindUserByID(ctx, session.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Int64("user_id", session.UserID).Msg("session of a missing user")
		_ = a.sessionStore.Delete(ctx, token)
		return models.User{}, ErrNotAuthenticated
	}
	if err != nil {
		log.Err(err).Int64("user_id", session.UserID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

func (a *authService) openSession(ctx context.Context, userID int64) (models.Session, error) {
	token, err := utils.NewSessionToken()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	now := a.now().UTC()
	session := models.Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(a.sessionTTL),
	}

	if err = a.sessionStore.Create(ctx, session); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("session creation failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	return session, nil
}
