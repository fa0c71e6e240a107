package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidMetadata is the base error every metadata validation
	// failure wraps. Transport layers map it to a client error.
	ErrInvalidMetadata = errors.New("invalid upload metadata")

	ErrEmptyDocumentType = fmt.Errorf("%w: document type is required", ErrInvalidMetadata)
	ErrEmptyPrimaryName  = fmt.Errorf("%w: primary name is required", ErrInvalidMetadata)
	ErrInvalidUploadDate = fmt.Errorf("%w: upload date must be YYYY-MM-DD", ErrInvalidMetadata)
	ErrNegativeValidity  = fmt.Errorf("%w: validity days cannot be negative", ErrInvalidMetadata)
	ErrInvalidEmail      = fmt.Errorf("%w: malformed contact email", ErrInvalidMetadata)
)
