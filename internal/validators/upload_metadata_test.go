package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veridoc/veridoc/models"
)

func validMetadata() models.UploadMetadata {
	return models.UploadMetadata{
		DocumentType: "diploma",
		PrimaryName:  "Jordan Woods",
		UploadDate:   "2026-01-15",
		ValidityDays: 365,
		ContactEmail: "jordan@example.org",
	}
}

func TestUploadMetadataValidator(t *testing.T) {
	v := NewUploadMetadataValidator()
	ctx := context.Background()

	t.Run("valid metadata passes", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, validMetadata()))
	})

	t.Run("optional email may be empty", func(t *testing.T) {
		meta := validMetadata()
		meta.ContactEmail = ""
		assert.NoError(t, v.Validate(ctx, meta))
	})

	tests := []struct {
		name   string
		mutate func(*models.UploadMetadata)
		want   error
	}{
		{
			name:   "missing document type",
			mutate: func(m *models.UploadMetadata) { m.DocumentType = "" },
			want:   ErrEmptyDocumentType,
		},
		{
			name:   "missing primary name",
			mutate: func(m *models.UploadMetadata) { m.PrimaryName = "" },
			want:   ErrEmptyPrimaryName,
		},
		{
			name:   "unparseable upload date",
			mutate: func(m *models.UploadMetadata) { m.UploadDate = "15.01.2026" },
			want:   ErrInvalidUploadDate,
		},
		{
			name:   "negative validity",
			mutate: func(m *models.UploadMetadata) { m.ValidityDays = -1 },
			want:   ErrNegativeValidity,
		},
		{
			name:   "malformed email",
			mutate: func(m *models.UploadMetadata) { m.ContactEmail = "not-an-address" },
			want:   ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := validMetadata()
			tt.mutate(&meta)

			err := v.Validate(ctx, meta)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrInvalidMetadata)
		})
	}

	t.Run("field scoped validation", func(t *testing.T) {
		meta := validMetadata()
		meta.ContactEmail = "broken"

		// only the date is checked, the broken email is not reached
		assert.NoError(t, v.Validate(ctx, meta, FieldUploadDate))
		assert.ErrorIs(t, v.Validate(ctx, meta, FieldContactEmail), ErrInvalidEmail)
	})

	t.Run("wrong value type", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(ctx, "not metadata"), ErrUnsupportedType)
	})

	t.Run("unknown field", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(ctx, validMetadata(), "Nope"), ErrUnknownField)
	})
}
