package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidRequest    = errors.New("invalid request")
	ErrPasswordTooLong   = fmt.Errorf("%w: password is too long", ErrInvalidRequest)
	ErrInvalidUserID     = errors.New("invalid user ID")
	ErrInvalidDocumentID = errors.New("invalid document ID")

	ErrNoFileProvided      = errors.New("no file provided")
	ErrInvalidFileName     = errors.New("invalid file name")
	ErrDisallowedExtension = errors.New("file extension is not allowed")
)
