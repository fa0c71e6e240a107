package models

// LedgerFact is the typed projection of the ledger's record for one
// content hash. The node returns it as a positional mixed-type tuple;
// the ledger client decodes it into this struct at the facade boundary
// so no downstream component ever sees positional data.
//
// A fact is immutable on the ledger except for the one-way revoke
// transition: once RevokedAt is set it is never cleared.
type LedgerFact struct {
	// Hash is the content identifier the fact is keyed by.
	Hash string `json:"hash"`

	// Active reports the ledger-level activation flag. Distinct from
	// revocation: a fact can be inactive without being revoked.
	Active bool `json:"active"`

	// IssuedAt is the ledger timestamp of the issuance, unix seconds.
	IssuedAt int64 `json:"issued_at"`

	// ExpiresAt is the ledger expiry timestamp, unix seconds.
	// Zero encodes lifetime validity.
	ExpiresAt int64 `json:"expires_at"`

	// RevokedAt is the ledger timestamp of revocation, unix seconds.
	// Zero while the fact is not revoked.
	RevokedAt int64 `json:"revoked_at"`

	// Issuer is the signing identity that anchored the fact.
	Issuer string `json:"issuer"`

	// IssuerName is the registered human-readable issuer name.
	IssuerName string `json:"issuer_name"`
}

// Revoked reports whether the one-way revoke transition has happened.
func (f LedgerFact) Revoked() bool {
	return f.RevokedAt > 0
}

// Lifetime reports whether the fact never expires.
func (f LedgerFact) Lifetime() bool {
	return f.ExpiresAt == 0
}

// LedgerReceipt is the confirmation record of a finalized ledger write.
type LedgerReceipt struct {
	// TxHash is the transaction reference of the write.
	TxHash string `json:"transaction_hash"`

	// BlockNumber is the block the transaction was included in.
	BlockNumber int64 `json:"block_number"`
}

// ResolvedDocument merges one ledger fact (authoritative) with an optional
// metadata record (descriptive) into a single per-request view. It is
// computed on demand and never stored.
type ResolvedDocument struct {
	Hash   string `json:"hash"`
	Status Status `json:"status"`

	// Ledger-sourced fields. Present only when the fact exists.
	IssuedAt   int64  `json:"issued_at,omitempty"`
	ExpiresAt  int64  `json:"expires_at,omitempty"`
	RevokedAt  int64  `json:"revoked_at,omitempty"`
	Issuer     string `json:"issuer,omitempty"`
	IssuerName string `json:"issuer_name,omitempty"`

	// Metadata-sourced fields. Absent for orphaned on-chain facts.
	DocumentType string `json:"document_type,omitempty"`
	PrimaryName  string `json:"primary_name,omitempty"`
	UploadDate   string `json:"upload_date,omitempty"`
	ExpiryDate   string `json:"expiry_date,omitempty"`
	TxHash       string `json:"transaction_hash,omitempty"`

	// HasMetadata distinguishes "fact with no local record" from a fully
	// merged view, so callers can report the orphan-on-chain case.
	HasMetadata bool `json:"has_metadata"`
}
