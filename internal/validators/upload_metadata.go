package validators

import (
	"context"
	"net/mail"
	"time"

	"github.com/veridoc/veridoc/models"
)

// uploadDateLayout is the wire format of the operator-supplied issuance
// date.
const uploadDateLayout = "2006-01-02"

// Metadata field names accepted by [UploadMetadataValidator.Validate] for
// field-scoped validation.
const (
	FieldDocumentType = "DocumentType"
	FieldPrimaryName  = "PrimaryName"
	FieldUploadDate   = "UploadDate"
	FieldValidityDays = "ValidityDays"
	FieldContactEmail = "ContactEmail"
)

// UploadMetadataValidator checks the descriptive metadata attached to an
// issuance request. Content bytes are validated separately; this
// validator only covers the operator-supplied form fields.
type UploadMetadataValidator struct{}

func NewUploadMetadataValidator() *UploadMetadataValidator {
	return &UploadMetadataValidator{}
}

// Validate implements [Validator] for [models.UploadMetadata] values.
// Without field names every rule runs; with field names only the listed
// fields are checked.
func (v *UploadMetadataValidator) Validate(_ context.Context, value any, fields ...string) error {
	meta, ok := value.(models.UploadMetadata)
	if !ok {
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		fields = []string{FieldDocumentType, FieldPrimaryName, FieldUploadDate, FieldValidityDays, FieldContactEmail}
	}

	for _, field := range fields {
		if err := v.validateField(meta, field); err != nil {
			return err
		}
	}

	return nil
}

func (v *UploadMetadataValidator) validateField(meta models.UploadMetadata, field string) error {
	switch field {
	case FieldDocumentType:
		if meta.DocumentType == "" {
			return ErrEmptyDocumentType
		}
	case FieldPrimaryName:
		if meta.PrimaryName == "" {
			return ErrEmptyPrimaryName
		}
	case FieldUploadDate:
		if _, err := time.Parse(uploadDateLayout, meta.UploadDate); err != nil {
			return ErrInvalidUploadDate
		}
	case FieldValidityDays:
		if meta.ValidityDays < 0 {
			return ErrNegativeValidity
		}
	case FieldContactEmail:
		// contact email is optional
		if meta.ContactEmail == "" {
			return nil
		}
		if _, err := mail.ParseAddress(meta.ContactEmail); err != nil {
			return ErrInvalidEmail
		}
	default:
		return ErrUnknownField
	}

	return nil
}
