package models

import "time"

// Status is the closed set of document validity states computed from
// ledger truth. Revocation always wins over the activation flag.
type Status string

const (
	// StatusActive: the fact exists, is active, and is not revoked.
	StatusActive Status = "Active"

	// StatusRevoked: the fact carries a revocation timestamp. Permanent.
	StatusRevoked Status = "Revoked"

	// StatusInactive: the fact exists but its activation flag is off.
	// Ledger-level deactivation, distinct from revocation.
	StatusInactive Status = "Inactive"

	// StatusNotFound: no fact exists on the ledger for the hash.
	StatusNotFound Status = "NotFound"
)

// ExpiryLifetime is the display value used when a document never expires.
const ExpiryLifetime = "Lifetime"

// ExpiryDisplay derives the display-only expiry date from the operator
// supplied upload date and validity window. The result is informational:
// expiry never changes the resolved status.
func ExpiryDisplay(uploadDate string, validityDays int64) string {
	if validityDays <= 0 {
		return ExpiryLifetime
	}

	upload, err := time.Parse("2006-01-02", uploadDate)
	if err != nil {
		return ExpiryLifetime
	}

	return upload.AddDate(0, 0, int(validityDays)).Format("2006-01-02")
}
