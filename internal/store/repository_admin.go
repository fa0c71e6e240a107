package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"

	"github.com/veridoc/veridoc/internal/logger"
	"github.com/veridoc/veridoc/models"
)

// adminRepository is the SQL-backed implementation of [AdminRepository].
// It handles operator accounts and their one-time login codes.
type adminRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAdminRepository constructs an [AdminRepository] backed by the provided
// database connection and logger.
func NewAdminRepository(db *DB, logger *logger.Logger) AdminRepository {
	logger.Debug().Msg("creating admin repository")
	return &adminRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAdmin persists a new operator account and returns the fully
// populated [models.Admin] with server-assigned fields (AdminID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrAdminAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *adminRepository) CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAdmin,
		admin.Email, admin.Name, admin.PasswordHash, admin.Role, admin.Organization)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*adminRepository.CreateAdmin").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Admin{}, ErrAdminAlreadyExists
		default:
			return models.Admin{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := scanAdmin(row, &admin); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Admin{}, ErrAdminAlreadyExists
		}
		log.Err(err).Str("func", "*adminRepository.CreateAdmin").Msg("error: scanning error")
		return models.Admin{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return admin, nil
}

// FindAdminByEmail retrieves the operator account whose email matches.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrAdminNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *adminRepository) FindAdminByEmail(ctx context.Context, email string) (models.Admin, error) {
	return r.findAdmin(ctx, findAdminByEmail, email)
}

// FindAdminByID retrieves the operator account with the given id.
func (r *adminRepository) FindAdminByID(ctx context.Context, adminID int64) (models.Admin, error) {
	return r.findAdmin(ctx, findAdminByID, adminID)
}

func (r *adminRepository) findAdmin(ctx context.Context, query string, arg any) (models.Admin, error) {
	log := logger.FromContext(ctx)

	var admin models.Admin
	row := r.db.QueryRowContext(ctx, query, arg)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*adminRepository.findAdmin").Msg("error: row is nil")
		return models.Admin{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := scanAdmin(row, &admin); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Admin{}, ErrAdminNotFound
		}
		log.Err(err).Str("func", "*adminRepository.findAdmin").Msg("error: scanning error")
		return models.Admin{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return admin, nil
}

// SaveLoginCode stores the hashed one-time code for an operator. Any
// earlier code for the same operator is removed first, so at most one code
// is live per account.
func (r *adminRepository) SaveLoginCode(ctx context.Context, code models.LoginCode) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*adminRepository.SaveLoginCode").Msg("error: beginning transaction")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteLoginCodesForAdmin, code.AdminID); err != nil {
		log.Err(err).Str("func", "*adminRepository.SaveLoginCode").Msg("error: deleting stale codes")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	result, err := tx.ExecContext(ctx, insertLoginCode, code.AdminID, code.CodeHash, code.ExpiresAt)
	if err != nil {
		log.Err(err).Str("func", "*adminRepository.SaveLoginCode").Msg("error: executing statement")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrDocumentNotSaved
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*adminRepository.SaveLoginCode").Msg("error: committing transaction")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// ConsumeLoginCode atomically deletes and returns the live code record for
// the operator. The DELETE ... RETURNING form guarantees single use even
// under concurrent verification attempts.
//
// Returns [ErrLoginCodeNotFound] when no unexpired code matches.
func (r *adminRepository) ConsumeLoginCode(ctx context.Context, adminID int64, codeHash string, now time.Time) (models.LoginCode, error) {
	log := logger.FromContext(ctx)

	var code models.LoginCode
	row := r.db.QueryRowContext(ctx, consumeLoginCode, adminID, codeHash, now)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*adminRepository.ConsumeLoginCode").Msg("error: row is nil")
		return models.LoginCode{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	err := row.Scan(&code.ID, &code.AdminID, &code.CodeHash, &code.ExpiresAt, &code.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LoginCode{}, ErrLoginCodeNotFound
		}
		log.Err(err).Str("func", "*adminRepository.ConsumeLoginCode").Msg("error: scanning error")
		return models.LoginCode{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return code, nil
}

func scanAdmin(row rowScanner, admin *models.Admin) error {
	return row.Scan(&admin.AdminID, &admin.Email, &admin.Name, &admin.PasswordHash,
		&admin.Role, &admin.Organization, &admin.CreatedAt)
}
