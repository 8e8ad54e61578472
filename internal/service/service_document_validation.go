package service

import (
	"context"
	"fmt"

	"github.com/vijaycharanme-code/doc-manager/internal/metrics"
	"github.com/vijaycharanme-code/doc-manager/internal/store"
	"github.com/vijaycharanme-code/doc-manager/internal/validators"
	"github.com/vijaycharanme-code/doc-manager/models"
)

// DocumentValidationService checks requests before they reach the wrapped
// DocumentService. Validation errors are wrapped with
// ErrInvalidDataProvided and keep the validators sentinel in the chain.
type DocumentValidationService struct {
	inner     DocumentService
	validator validators.Validator
}

func NewDocumentValidationService() DocumentServiceWrapper {
	return &DocumentValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *DocumentValidationService) AddLink(ctx context.Context, req models.AddLinkRequest) (models.Document, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.AddLink(ctx, req)
}

// Upload checks the file part and the extension allow-list on the name as
// sent by the client, before anything is written.
func (v *DocumentValidationService) Upload(ctx context.Context, req models.UploadRequest) (models.Document, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		metrics.RecordUploadRejected("validation")
		return models.Document{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Upload(ctx, req)
}

func (v *DocumentValidationService) List(ctx context.Context, userID int64) ([]models.DocumentView, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}

	return v.inner.List(ctx, userID)
}

func (v *DocumentValidationService) Get(ctx context.Context, req models.DocumentRequest) (models.Document, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Get(ctx, req)
}

func (v *DocumentValidationService) Download(ctx context.Context, req models.DocumentRequest) (models.Document, *store.StoredObject, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Document{}, nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Download(ctx, req)
}

func (v *DocumentValidationService) Delete(ctx context.Context, req models.DocumentRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Delete(ctx, req)
}

func (v *DocumentValidationService) Wrap(wrapped DocumentService) DocumentService {
	v.inner = wrapped
	return v
}
