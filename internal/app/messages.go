// SPDX-License-Identifier: Apache-2.0

// Package app contains shared application-layer constants used across the
// registry server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written
// into HTTP response bodies or log entries to describe the outcome of an
// operation. Keeping them in one place ensures consistent wording
// throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgDocumentStored is returned after a confirmed issuance.
	MsgDocumentStored = "document stored successfully"

	// MsgDocumentRevoked is returned after a confirmed revocation.
	MsgDocumentRevoked = "document revoked successfully"

	// MsgDocumentVerified is returned when the uploaded bytes resolve to
	// an active ledger fact.
	MsgDocumentVerified = "document is verified on the ledger"

	// MsgDocumentNotVerified is returned when the uploaded bytes resolve
	// to no fact, a revoked fact, or an inactive one.
	MsgDocumentNotVerified = "document not found or has been revoked"

	// MsgContractPaused / MsgContractUnpaused report a confirmed pause
	// state change.
	MsgContractPaused   = "contract paused successfully"
	MsgContractUnpaused = "contract unpaused successfully"

	// MsgContractIsPaused / MsgContractIsActive report the current pause
	// state.
	MsgContractIsPaused = "contract is paused"
	MsgContractIsActive = "contract is active"

	// MsgPauseActionRequired is returned when the pause request carries
	// an action other than "pause" or "unpause".
	MsgPauseActionRequired = "action must be 'pause' or 'unpause'"

	// MsgLoginCodeSent is returned after a one-time code was accepted
	// for delivery.
	MsgLoginCodeSent = "one-time code sent"

	// MsgLoginSuccessful is returned after a valid code exchange.
	MsgLoginSuccessful = "login successful"
)
