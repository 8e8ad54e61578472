package validators

import (
	"context"
	"fmt"

	"github.com/vijaycharanme-code/doc-manager/internal/utils"
	"github.com/vijaycharanme-code/doc-manager/models"
)

// Field name constants used to restrict validation to a subset of rules.
const (
	// FieldStruct runs the `validate` struct tags of the request.
	FieldStruct = "struct"

	// FieldPasswordLength limits the password to the bytes bcrypt accepts.
	FieldPasswordLength = "password_length"

	// FieldUserID targets the owner identifier taken from the session.
	FieldUserID = "user_id"

	// FieldDocumentID targets the document identifier from the URL.
	FieldDocumentID = "document_id"

	// FieldFile requires an uploaded file part with a name.
	FieldFile = "file"

	// FieldFileExtension enforces the upload extension allow-list.
	FieldFileExtension = "file_extension"
)

// RequestValidator implements Validator for the API request models:
// SignupRequest, LoginRequest, AddLinkRequest, UploadRequest and
// DocumentRequest. Value and pointer forms are accepted.
type RequestValidator struct {
}

// NewRequestValidator constructs a RequestValidator and returns it as the
// Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj. When fields is empty the
// default rule set of that type is applied. Returns ErrUnsupportedType for
// any other type.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(value, fields...)
	case *models.SignupRequest:
		return v.validateSignup(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.AddLinkRequest:
		return v.validateAddLink(value, fields...)
	case *models.AddLinkRequest:
		return v.validateAddLink(*value, fields...)

	case models.UploadRequest:
		return v.validateUpload(value, fields...)
	case *models.UploadRequest:
		return v.validateUpload(*value, fields...)

	case models.DocumentRequest:
		return v.validateDocumentRequest(value, fields...)
	case *models.DocumentRequest:
		return v.validateDocumentRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateSignup defaults to FieldStruct and FieldPasswordLength.
// ConfirmPassword and PrimaryUse are form fields only and are not checked.
func (v *RequestValidator) validateSignup(req models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStruct, FieldPasswordLength}
	}

	for _, f := range fields {
		switch f {
		case FieldStruct:
			if err := ValidateStruct(req); err != nil {
				return err
			}
		case FieldPasswordLength:
			// the struct tag counts characters, bcrypt counts bytes
			if len(req.Password) > utils.MaxPasswordLength {
				return fmt.Errorf("%w: password must be at most %d bytes", ErrPasswordTooLong, utils.MaxPasswordLength)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStruct}
	}

	for _, f := range fields {
		switch f {
		case FieldStruct:
			if err := ValidateStruct(req); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateAddLink(req models.AddLinkRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldStruct}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if req.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldStruct:
			if err := ValidateStruct(req); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUpload defaults to FieldUserID, FieldFile and FieldFileExtension.
func (v *RequestValidator) validateUpload(req models.UploadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldFile, FieldFileExtension}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if req.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldFile:
			if req.Content == nil || req.FileName == "" {
				return ErrNoFileProvided
			}
		case FieldFileExtension:
			if _, err := CheckFileName(req.FileName); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateDocumentRequest(req models.DocumentRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldDocumentID}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if req.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldDocumentID:
			if req.DocumentID <= 0 {
				return fmt.Errorf("%w: %d", ErrInvalidDocumentID, req.DocumentID)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
