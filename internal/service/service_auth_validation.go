package service

import (
	"context"
	"fmt"

	"github.com/vijaycharanme-code/doc-manager/internal/logger"
	"github.com/vijaycharanme-code/doc-manager/internal/validators"
	"github.com/vijaycharanme-code/doc-manager/models"
)

// AuthValidationService validates signup requests before they reach the
// wrapped AuthService. Login requests are passed through untouched so that
// malformed credentials fail with the generic ErrInvalidCredentials.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, req models.SignupRequest) (models.User, models.Session, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Info().Err(err).Str("username", req.Username).Msg("signup validation failed")
		return models.User{}, models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Session, error) {
	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) Logout(ctx context.Context, token string) error {
	return v.inner.Logout(ctx, token)
}

func (v *AuthValidationService) CurrentUser(ctx context.Context, token string) (models.User, error) {
	return v.inner.CurrentUser(ctx, token)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
