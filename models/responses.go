package models

// UploadResponse reports the outcome of a successful issuance: the
// document is anchored on the ledger and its metadata is stored locally.
type UploadResponse struct {
	Message      string `json:"message"`
	Hash         string `json:"hash"`
	TxHash       string `json:"transaction_hash,omitempty"`
	ValidityDays int64  `json:"validity_days"`
}

// VerifyResponse is the public verification result for uploaded bytes.
type VerifyResponse struct {
	Verified bool   `json:"verified"`
	Hash     string `json:"hash"`
	Message  string `json:"message"`
}

// RevokeResponse reports a confirmed revocation.
type RevokeResponse struct {
	Message      string `json:"message"`
	DocumentHash string `json:"document_hash"`
	TxHash       string `json:"transaction_hash"`
	BlockNumber  int64  `json:"block_number"`
}

// PauseResponse reports a confirmed pause-state change.
type PauseResponse struct {
	Message     string `json:"message"`
	TxHash      string `json:"transaction_hash"`
	BlockNumber int64  `json:"block_number"`
}

// ContractStatusResponse reports the current ledger pause state.
type ContractStatusResponse struct {
	Paused  bool   `json:"paused"`
	Message string `json:"message"`
}

// HistoryResponse is the reconciled listing of all known documents.
// Every Status in Documents is recomputed from the ledger, never read
// from the local cache.
type HistoryResponse struct {
	Count     int                `json:"count"`
	Documents []ResolvedDocument `json:"documents"`
}

// DashboardStats aggregates reconciled status counts for the admin
// dashboard.
type DashboardStats struct {
	TotalDocuments    int `json:"total_documents"`
	IssuedToday       int `json:"issued_today"`
	ActiveDocuments   int `json:"active_documents"`
	RevokedDocuments  int `json:"revoked_documents"`
	InactiveDocuments int `json:"inactive_documents"`
}

// LoginResponse is returned after a successful one-time-code exchange.
type LoginResponse struct {
	Message      string `json:"message"`
	Token        string `json:"token"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Organization string `json:"organization"`
}
