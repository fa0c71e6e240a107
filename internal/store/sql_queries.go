package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/veridoc/veridoc/models"
)

const (
	documentColumns = `id, hash, document_type, primary_name, upload_date, validity_days, expiry_date,
    contact_email, contact_mobile, tx_hash, revoke_tx_hash, local_status, created_at, updated_at`

	upsertDocument = `INSERT INTO documents (hash, document_type, primary_name, upload_date, validity_days, expiry_date,
    contact_email, contact_mobile, tx_hash, revoke_tx_hash, local_status)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    ON CONFLICT (hash) DO UPDATE SET
        document_type = excluded.document_type,
        primary_name = excluded.primary_name,
        upload_date = excluded.upload_date,
        validity_days = excluded.validity_days,
        expiry_date = excluded.expiry_date,
        contact_email = excluded.contact_email,
        contact_mobile = excluded.contact_mobile,
        tx_hash = excluded.tx_hash,
        revoke_tx_hash = excluded.revoke_tx_hash,
        local_status = excluded.local_status,
        updated_at = CURRENT_TIMESTAMP
    RETURNING id, hash, document_type, primary_name, upload_date, validity_days, expiry_date,
    contact_email, contact_mobile, tx_hash, revoke_tx_hash, local_status, created_at, updated_at;`

	getDocumentByHash = `SELECT id, hash, document_type, primary_name, upload_date, validity_days, expiry_date,
    contact_email, contact_mobile, tx_hash, revoke_tx_hash, local_status, created_at, updated_at
    FROM documents
    WHERE hash = $1;`

	updateDocumentStatus = `UPDATE documents
    SET local_status = $2,
        revoke_tx_hash = CASE WHEN $3 = '' THEN revoke_tx_hash ELSE $3 END,
        updated_at = CURRENT_TIMESTAMP
    WHERE hash = $1;`

	countDocumentsCreatedSince = `SELECT COUNT(*)
    FROM documents
    WHERE created_at >= $1;`

	createAdmin = `INSERT INTO admins (email, name, password_hash, role, organization)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING admin_id, email, name, password_hash, role, organization, created_at;`

	findAdminByEmail = `SELECT admin_id, email, name, password_hash, role, organization, created_at
    FROM admins
    WHERE email = $1;`

	findAdminByID = `SELECT admin_id, email, name, password_hash, role, organization, created_at
    FROM admins
    WHERE admin_id = $1;`

	deleteLoginCodesForAdmin = `DELETE FROM admin_login_codes
    WHERE admin_id = $1;`

	insertLoginCode = `INSERT INTO admin_login_codes (admin_id, code_hash, expires_at)
    VALUES ($1, $2, $3);`

	consumeLoginCode = `DELETE FROM admin_login_codes
    WHERE admin_id = $1 AND code_hash = $2 AND expires_at > $3
    RETURNING id, admin_id, code_hash, expires_at, created_at;`
)

// buildListQuery assembles the filtered History listing with squirrel.
// Zero-valued filter fields contribute no predicate; results are always
// newest first.
func buildListQuery(filter models.DocumentFilter) (string, []any, error) {
	builder := sq.
		Select("id", "hash", "document_type", "primary_name", "upload_date", "validity_days", "expiry_date",
			"contact_email", "contact_mobile", "tx_hash", "revoke_tx_hash", "local_status", "created_at", "updated_at").
		From(models.Document{}.TableName()).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		builder = builder.Where(sq.Eq{"local_status": statuses})
	}

	if filter.DocumentType != "" {
		builder = builder.Where(sq.Eq{"document_type": filter.DocumentType})
	}

	if !filter.CreatedAfter.IsZero() {
		builder = builder.Where(sq.GtOrEq{"created_at": filter.CreatedAfter})
	}

	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	return builder.ToSql()
}
