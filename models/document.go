// SPDX-License-Identifier: Apache-2.0

// Package models defines the shared domain types of the document ledger
// registry: the locally stored document metadata, the typed projection of
// ledger facts, resolved per-request views, and the request/response
// envelopes used by the HTTP transport layer.
package models

import "time"

// Document is the locally owned metadata record for one registered
// document, keyed by the content hash. It is a convenience cache next to
// the ledger: descriptive fields live only here, while existence and
// revocation are always decided by the ledger fact.
//
// LocalStatus is a possibly stale projection of ledger truth. Any report
// or listing must recompute the status from the ledger instead of
// trusting this field.
type Document struct {
	// ID is the internal surrogate key assigned by the database.
	// Not exposed via JSON.
	ID int64 `json:"-"`

	// Hash is the content identifier of the document bytes,
	// 0x-prefixed lowercase hex SHA-256. Unique across the table.
	Hash string `json:"hash"`

	// DocumentType is the human-facing category (diploma, license, ...).
	DocumentType string `json:"document_type"`

	// PrimaryName is the name the document was issued to.
	PrimaryName string `json:"primary_name"`

	// UploadDate is the issuance date supplied by the operator,
	// in YYYY-MM-DD form.
	UploadDate string `json:"upload_date"`

	// ValidityDays is the validity window requested at issuance.
	// Zero means lifetime validity.
	ValidityDays int64 `json:"validity_days"`

	// ExpiryDate is derived from UploadDate + ValidityDays at issuance
	// time and kept for display only. "Lifetime" when ValidityDays is 0.
	ExpiryDate string `json:"expiry_date"`

	// ContactEmail, when set, receives the issuance notification.
	ContactEmail string `json:"email,omitempty"`

	// ContactMobile is informational contact data.
	ContactMobile string `json:"mobile,omitempty"`

	// TxHash is the ledger transaction reference of the confirmed
	// issuance write.
	TxHash string `json:"transaction_hash"`

	// RevokeTxHash is the ledger transaction reference of the confirmed
	// revocation write, empty while the document is not revoked locally.
	RevokeTxHash string `json:"revoke_transaction_hash,omitempty"`

	// LocalStatus is the cached status projection. See the type comment.
	LocalStatus Status `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Document model.
func (d Document) TableName() string {
	return "documents"
}

// DocumentFilter narrows History listings. Zero values mean "no filter".
type DocumentFilter struct {
	// Statuses filters by cached local status values.
	Statuses []Status

	// DocumentType filters by exact document type.
	DocumentType string

	// CreatedAfter keeps records created at or after this instant.
	CreatedAfter time.Time

	// Limit caps the number of returned rows; 0 means no cap.
	Limit uint64
}
