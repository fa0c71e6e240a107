// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/veridoc/veridoc/internal/logger"
	"github.com/veridoc/veridoc/models"
)

// documentRepository is the SQL-backed implementation of
// [DocumentRepository]. It handles the "documents" table, keyed by the
// unique content hash.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type documentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDocumentRepository constructs a [DocumentRepository] backed by the
// provided database connection and logger.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		db:     db,
		logger: logger,
	}
}

// Upsert persists the metadata record and returns the canonical database
// representation with server-assigned fields (ID, CreatedAt, UpdatedAt).
// An existing record with the same hash has its mutable fields replaced,
// so a retried confirmed ledger write is tolerated.
//
// Transient driver errors (per the backend's [ErrorClassificator]) are
// retried once before the error is surfaced.
func (r *documentRepository) Upsert(ctx context.Context, document models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	saved, err := r.upsertOnce(ctx, document)
	if err != nil && r.db.errorClassificator.Classify(err) == Retryable {
		log.Warn().Err(err).Str("func", "*documentRepository.Upsert").Msg("retrying after transient DB error")
		saved, err = r.upsertOnce(ctx, document)
	}
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.Upsert").Msg("error: upsert failed")
		return models.Document{}, err
	}

	return saved, nil
}

func (r *documentRepository) upsertOnce(ctx context.Context, document models.Document) (models.Document, error) {
	row := r.db.QueryRowContext(ctx, upsertDocument,
		document.Hash, document.DocumentType, document.PrimaryName, document.UploadDate,
		document.ValidityDays, document.ExpiryDate, document.ContactEmail, document.ContactMobile,
		document.TxHash, document.RevokeTxHash, document.LocalStatus)

	if err := row.Err(); err != nil {
		return models.Document{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	saved, err := scanDocument(row)
	if err != nil {
		// keep the driver error unwrappable for the retry classifier
		return models.Document{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// GetByHash retrieves the record for the given content hash.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrDocumentNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *documentRepository) GetByHash(ctx context.Context, hash string) (models.Document, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getDocumentByHash, hash)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*documentRepository.GetByHash").Msg("error: row is nil")
		return models.Document{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	document, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Document{}, ErrDocumentNotFound
		}
		log.Err(err).Str("func", "*documentRepository.GetByHash").Msg("error: scanning error")
		return models.Document{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return document, nil
}

// List returns metadata records matching the filter, newest first. The
// query is assembled by [buildListQuery].
func (r *documentRepository) List(ctx context.Context, filter models.DocumentFilter) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.List").Msg("error: building query")
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.List").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	documents := make([]models.Document, 0)
	for rows.Next() {
		document, err := scanDocument(rows)
		if err != nil {
			log.Err(err).Str("func", "*documentRepository.List").Msg("error: scanning rows")
			return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
		}
		documents = append(documents, document)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return documents, nil
}

// UpdateStatus replaces the cached status projection for the given hash.
// A non-empty revokeTxHash additionally records the revocation
// transaction; an empty one leaves the stored value untouched.
//
// Returns [ErrDocumentNotFound] when no record matches the hash.
func (r *documentRepository) UpdateStatus(ctx context.Context, hash string, status models.Status, revokeTxHash string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateDocumentStatus, hash, status, revokeTxHash)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.UpdateStatus").Msg("error: executing statement")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrDocumentNotFound
	}

	return nil
}

// CountCreatedSince returns the number of records created at or after the
// given instant.
func (r *documentRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	row := r.db.QueryRowContext(ctx, countDocumentsCreatedSince, since)
	if err := row.Scan(&count); err != nil {
		log.Err(err).Str("func", "*documentRepository.CountCreatedSince").Msg("error: scanning error")
		return 0, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return count, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (models.Document, error) {
	var document models.Document
	err := row.Scan(
		&document.ID, &document.Hash, &document.DocumentType, &document.PrimaryName,
		&document.UploadDate, &document.ValidityDays, &document.ExpiryDate,
		&document.ContactEmail, &document.ContactMobile, &document.TxHash,
		&document.RevokeTxHash, &document.LocalStatus, &document.CreatedAt, &document.UpdatedAt)
	if err != nil {
		return models.Document{}, err
	}

	return document, nil
}
