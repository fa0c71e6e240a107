package store

import (
	"context"
	"time"

	"github.com/veridoc/veridoc/models"
)

// DocumentRepository persists the locally owned document metadata records.
// Records are keyed by content hash; the hash column is unique.
type DocumentRepository interface {
	// Upsert inserts the record or, when the hash already exists, updates
	// the mutable fields. Retried ledger writes therefore never fail on
	// the unique hash constraint.
	Upsert(ctx context.Context, document models.Document) (models.Document, error)

	// GetByHash returns the record for the given content hash.
	GetByHash(ctx context.Context, hash string) (models.Document, error)

	// List returns records matching the filter, newest first.
	List(ctx context.Context, filter models.DocumentFilter) ([]models.Document, error)

	// UpdateStatus replaces the cached status projection and, when
	// revokeTxHash is non-empty, records the revocation transaction.
	UpdateStatus(ctx context.Context, hash string, status models.Status, revokeTxHash string) error

	// CountCreatedSince returns the number of records created at or after
	// the given instant.
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

// AdminRepository persists operator accounts and their one-time login codes.
type AdminRepository interface {
	CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error)
	FindAdminByEmail(ctx context.Context, email string) (models.Admin, error)
	FindAdminByID(ctx context.Context, adminID int64) (models.Admin, error)

	// SaveLoginCode stores a hashed one-time code, replacing any earlier
	// code issued to the same operator.
	SaveLoginCode(ctx context.Context, code models.LoginCode) error

	// ConsumeLoginCode atomically deletes and returns the unexpired code
	// record matching the operator and code hash. Returns
	// ErrLoginCodeNotFound when no live code matches.
	ConsumeLoginCode(ctx context.Context, adminID int64, codeHash string, now time.Time) (models.LoginCode, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
