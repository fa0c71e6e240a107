package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDocumentNotFound is returned when a query or update targets a
	// document record (identified by content hash) that does not exist in
	// the database.
	ErrDocumentNotFound = errors.New("document metadata not found")

	// ErrDocumentNotSaved is returned when an INSERT or UPDATE completes
	// without error but the number of affected rows is zero, indicating
	// that no data was actually persisted.
	ErrDocumentNotSaved = errors.New("document metadata was not saved")

	// ErrAdminNotFound is returned when a lookup by email or id matches no
	// operator account.
	ErrAdminNotFound = errors.New("admin account not found")

	// ErrAdminAlreadyExists is returned when creating an operator account
	// fails because the email is already registered.
	ErrAdminAlreadyExists = errors.New("admin email already exists")

	// ErrLoginCodeNotFound is returned when consuming a one-time login
	// code that does not exist, was already used, or has expired.
	ErrLoginCodeNotFound = errors.New("login code not found or expired")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
