package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/vijaycharanme-code/doc-manager/internal/config"
	"github.com/vijaycharanme-code/doc-manager/internal/logger"
	"github.com/vijaycharanme-code/doc-manager/internal/mock"
	"github.com/vijaycharanme-code/doc-manager/internal/store"
	"github.com/vijaycharanme-code/doc-manager/internal/utils"
	"github.com/vijaycharanme-code/doc-manager/internal/validators"
	"github.com/vijaycharanme-code/doc-manager/models"
)

var fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

// stubFolders is a FolderService that records the ids it was asked for.
type stubFolders struct {
	ensured []int64
	err     error
}

func (s *stubFolders) EnsureFolders(_ context.Context, userIDs ...int64) error {
	s.ensured = append(s.ensured, userIDs...)
	return s.err
}

func (s *stubFolders) RepairAll(context.Context) (int, error) { return 0, nil }

// newTestAuthSvc creates authService with gomock dependencies
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (
	*authService,
	*mock.MockUserRepository,
	*mock.MockSessionStore,
	*stubFolders,
) {
	t.Helper()
	users := mock.NewMockUserRepository(ctrl)
	sessions := mock.NewMockSessionStore(ctrl)
	folders := &stubFolders{}

	cfg := config.App{BcryptCost: bcrypt.MinCost, SessionTTL: time.Hour}
	svc := NewAuthService(users, sessions, folders, cfg, logger.Nop()).(*authService)
	svc.now = func() time.Time { return fixedNow }

	return svc, users, sessions, folders
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, sessions, folders := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	req := models.SignupRequest{Username: "alice", Email: "a@x.com", Password: "pw123"}

	gomock.InOrder(
		users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "alice", u.Username)
				assert.Equal(t, "a@x.com", u.Email)
				assert.NotEqual(t, "pw123", u.PasswordHash, "only the digest is stored")
				assert.True(t, utils.CheckPassword(u.PasswordHash, "pw123"))
				assert.Equal(t, fixedNow, u.CreatedAt)
				u.ID = 7
				return u, nil
			},
		),
		sessions.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, s models.Session) error {
				assert.Equal(t, int64(7), s.UserID)
				assert.Equal(t, fixedNow.Add(time.Hour), s.ExpiresAt)
				assert.Len(t, s.Token, 2*utils.SessionTokenBytes)
				return nil
			},
		),
	)

	user, session, err := svc.Register(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, int64(7), session.UserID)
	assert.Equal(t, []int64{7}, folders.ensured)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _, folders := newTestAuthSvc(t, ctrl)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUsernameAlreadyExists)

	_, _, err := svc.Register(context.Background(), models.SignupRequest{Username: "alice", Email: "b@x.com", Password: "pw"})

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
	assert.Empty(t, folders.ensured, "no folder for a rejected signup")
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _, _ := newTestAuthSvc(t, ctrl)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, _, err := svc.Register(context.Background(), models.SignupRequest{Username: "bob", Email: "a@x.com", Password: "pw"})

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Register_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestAuthSvc(t, ctrl)

	_, _, err := svc.Register(context.Background(), models.SignupRequest{Username: "alice"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Register_FolderFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, sessions, folders := newTestAuthSvc(t, ctrl)
	folders.err = errors.New("disk full")

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{ID: 3, Username: "carol"}, nil)
	sessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	user, _, err := svc.Register(context.Background(), models.SignupRequest{Username: "carol", Email: "c@x.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
}

func TestAuthService_Register_SessionStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, sessions, _ := newTestAuthSvc(t, ctrl)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{ID: 3}, nil)
	sessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("badger closed"))

	_, _, err := svc.Register(context.Background(), models.SignupRequest{Username: "carol", Email: "c@x.com", Password: "pw"})

	assert.ErrorIs(t, err, ErrSessionCreationFailed)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, sessions, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{ID: 1, Username: "alice", PasswordHash: mustHash(t, "pw123")}

	users.EXPECT().FindUserByUsername(ctx, "alice").Return(stored, nil)
	sessions.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	user, session, err := svc.Login(ctx, models.LoginRequest{Username: "alice", Password: "pw123"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, int64(1), session.UserID)
	assert.NotEmpty(t, session.Token)
}

func TestAuthService_Login_WrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().FindUserByUsername(ctx, "alice").
		Return(models.User{ID: 1, Username: "alice", PasswordHash: mustHash(t, "pw123")}, nil)
	users.EXPECT().FindUserByUsername(ctx, "mallory").Return(models.User{}, store.ErrNoUserWasFound)

	_, _, wrongPassword := svc.Login(ctx, models.LoginRequest{Username: "alice", Password: "nope"})
	_, _, unknownUser := svc.Login(ctx, models.LoginRequest{Username: "mallory", Password: "nope"})

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestAuthSvc(t, ctrl)

	_, _, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _, _ := newTestAuthSvc(t, ctrl)

	users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, store.ErrExecutingQuery)

	_, _, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "pw"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestAuthService_Logout_DeletesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, sessions, _ := newTestAuthSvc(t, ctrl)

	sessions.EXPECT().Delete(gomock.Any(), "tok").Return(nil).Times(2)

	require.NoError(t, svc.Logout(context.Background(), "tok"))
	require.NoError(t, svc.Logout(context.Background(), "tok"), "logout is idempotent")
}

func TestAuthService_Logout_EmptyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestAuthSvc(t, ctrl)

	assert.NoError(t, svc.Logout(context.Background(), ""))
}

// ── CurrentUser ──────────────────────────────────────────────────────────────

func TestAuthService_CurrentUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, sessions, _ := newTestAuthSvc(t, ctrl)

	sessions.EXPECT().Get(gomock.Any(), "tok").Return(models.Session{Token: "tok", UserID: 5}, nil)
	users.EXPECT().FindUserByID(gomock.Any(), int64(5)).Return(models.User{ID: 5, Username: "eve"}, nil)

	user, err := svc.CurrentUser(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, "eve", user.Username)
}

func TestAuthService_CurrentUser_Anonymous(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		storeErr error
	}{
		{name: "empty token", token: ""},
		{name: "unknown token", token: "tok", storeErr: store.ErrSessionNotFound},
		{name: "expired token", token: "tok", storeErr: store.ErrSessionExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, sessions, _ := newTestAuthSvc(t, ctrl)

			if tt.token != "" {
				sessions.EXPECT().Get(gomock.Any(), tt.token).Return(models.Session{}, tt.storeErr)
			}

			_, err := svc.CurrentUser(context.Background(), tt.token)

			assert.ErrorIs(t, err, ErrNotAuthenticated)
		})
	}
}

func TestAuthService_CurrentUser_UserGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, sessions, _ := newTestAuthSvc(t, ctrl)

	sessions.EXPECT().Get(gomock.Any(), "tok").Return(models.Session{Token: "tok", UserID: 9}, nil)
	users.EXPECT().FindUserByID(gomock.Any(), int64(9)).Return(models.User{}, store.ErrNoUserWasFound)
	sessions.EXPECT().Delete(gomock.Any(), "tok").Return(nil)

	_, err := svc.CurrentUser(context.Background(), "tok")

	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

// ── Validation wrapper ───────────────────────────────────────────────────────

func TestAuthValidationService_Register_RejectsBeforeInner(t *testing.T) {
	ctrl := gomock.NewController(t)
	// no expectations are set: the inner service must not be reached
	inner, _, _, _ := newTestAuthSvc(t, ctrl)
	svc := NewAuthValidationService().Wrap(inner)

	tests := []struct {
		name    string
		req     models.SignupRequest
		wantErr error
	}{
		{
			name:    "missing email",
			req:     models.SignupRequest{Username: "alice", Password: "pw"},
			wantErr: ErrInvalidDataProvided,
		},
		{
			name:    "malformed email",
			req:     models.SignupRequest{Username: "alice", Email: "not-an-email", Password: "pw"},
			wantErr: ErrInvalidDataProvided,
		},
		{
			name:    "password over bcrypt byte limit",
			req:     models.SignupRequest{Username: "alice", Email: "a@x.com", Password: strings.Repeat("é", 72)},
			wantErr: validators.ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthValidationService_Register_PassesValidRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner, users, sessions, _ := newTestAuthSvc(t, ctrl)
	svc := NewAuthValidationService().Wrap(inner)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{ID: 1, Username: "alice"}, nil)
	sessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	_, _, err := svc.Register(context.Background(), models.SignupRequest{
		Username:        "alice",
		Email:           "a@x.com",
		Password:        "pw123",
		ConfirmPassword: "pw123",
		PrimaryUse:      "personal",
	})

	require.NoError(t, err)
}

func TestAuthValidationService_Register_IgnoresConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner, users, sessions, _ := newTestAuthSvc(t, ctrl)
	svc := NewAuthValidationService().Wrap(inner)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{ID: 1, Username: "alice"}, nil)
	sessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	_, _, err := svc.Register(context.Background(), models.SignupRequest{
		Username:        "alice",
		Email:           "a@x.com",
		Password:        "pw123",
		ConfirmPassword: "something else",
	})

	require.NoError(t, err)
}
