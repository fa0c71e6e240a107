package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrAlreadyRegistered is returned when issuing a document whose hash
	// already has a fact on the ledger.
	ErrAlreadyRegistered = errors.New("document already registered")

	// ErrNotRevocable is returned when revoking a document that is not
	// anchored or is already revoked.
	ErrNotRevocable = errors.New("document is not revocable")

	// ErrWrongCredentials covers both unknown operator emails and wrong
	// passwords, so login responses do not leak account existence.
	ErrWrongCredentials = errors.New("wrong email or password")

	// ErrLoginCodeInvalid is returned when a one-time code is unknown,
	// already used, or expired.
	ErrLoginCodeInvalid = errors.New("login code invalid or expired")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
