package models

// UploadMetadata carries the operator-supplied descriptive fields that
// accompany a document upload. The transport layer parses it from the
// multipart form; the registry service treats it as already validated.
type UploadMetadata struct {
	DocumentType  string `json:"document_type"`
	PrimaryName   string `json:"primary_name"`
	UploadDate    string `json:"upload_date"`
	ValidityDays  int64  `json:"validity_days"`
	ContactEmail  string `json:"email"`
	ContactMobile string `json:"mobile"`
}

// RevokeRequest identifies the document to revoke by its content hash.
type RevokeRequest struct {
	DocumentHash string `json:"document_hash"`
}

// PauseRequest toggles the registry pause state.
// Action must be "pause" or "unpause".
type PauseRequest struct {
	Action string `json:"action"`
}

// OTPLoginRequest starts the admin login flow: password check first,
// then a one-time code is mailed to the operator.
type OTPLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// OTPVerifyRequest exchanges a valid one-time code for a session token.
type OTPVerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}
