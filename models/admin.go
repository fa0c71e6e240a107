package models

import "time"

// Admin represents an operator account authorized to issue and revoke
// documents. Sensitive fields must never be exposed outside trusted
// boundaries.
type Admin struct {
	// AdminID is the internal unique identifier of the operator.
	// Not exposed via JSON; used only at the persistence layer.
	AdminID int64 `json:"-"`

	// Email is the unique login identifier and the delivery address for
	// one-time login codes.
	Email string `json:"email"`

	// Name is the display name of the operator.
	Name string `json:"name"`

	// PasswordHash is the bcrypt hash of the operator password.
	// Never serialized.
	PasswordHash string `json:"-"`

	// Role is the coarse authorization role (e.g. "issuer", "admin").
	Role string `json:"role"`

	// Organization is the issuing organization the operator acts for.
	Organization string `json:"organization"`

	// CreatedAt is the account creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Admin model.
func (a Admin) TableName() string {
	return "admins"
}

// LoginCode is a single-use, TTL-bound one-time code issued after a
// successful password check. Only the HMAC-free SHA-256 hash of the code
// is stored; the plaintext travels once, by email.
type LoginCode struct {
	ID        int64     `json:"-"`
	AdminID   int64     `json:"-"`
	CodeHash  string    `json:"-"`
	ExpiresAt time.Time `json:"-"`
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the LoginCode model.
func (c LoginCode) TableName() string {
	return "admin_login_codes"
}
