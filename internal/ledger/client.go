// SPDX-License-Identifier: Apache-2.0

// Package ledger contains the client facade for the external append-only
// document ledger and the write coordinator that serializes state-changing
// submissions per signing identity.
//
// The ledger node is the authoritative source of registration facts; this
// package is the only place that speaks its wire protocol. All other
// packages consume the typed [models.LedgerFact] and [models.LedgerReceipt]
// representations.
package ledger

import (
	"context"

	"github.com/veridoc/veridoc/models"
)

//go:generate mockgen -source=client.go -destination=../mock/ledger_client_mock.go -package=mock

// Client is the read/write facade over the external ledger node.
//
// Read methods return current on-ledger state. Write methods only submit:
// they return a [PendingWrite] whose Wait method blocks until the ledger
// confirms or rejects the transaction. Callers that need confirmed writes
// must go through the [Coordinator] so the signing identity's transaction
// sequence is never used concurrently.
type Client interface {
	// GetFact returns the registration fact for the given content hash.
	// Returns ErrFactNotFound if the hash was never anchored.
	GetFact(ctx context.Context, hash string) (models.LedgerFact, error)

	// StoreHash submits an anchoring transaction for the given content
	// hash. validityDays of zero means lifetime validity.
	StoreHash(ctx context.Context, hash string, validityDays int64) (PendingWrite, error)

	// RevokeHash submits a revocation transaction for an anchored hash.
	RevokeHash(ctx context.Context, hash string) (PendingWrite, error)

	// Paused reports whether the registry contract currently rejects
	// state-changing operations.
	Paused(ctx context.Context) (bool, error)

	// SetPaused submits a transaction toggling the contract pause state.
	SetPaused(ctx context.Context, paused bool) (PendingWrite, error)
}

// PendingWrite is a submitted but not yet finalized ledger transaction.
type PendingWrite interface {
	// TxHash returns the transaction hash assigned at submission time.
	TxHash() string

	// Wait blocks until the transaction is confirmed, rejected, or ctx
	// expires. On success it returns the confirmation receipt. A rejected
	// transaction yields an ErrWriteFailed-wrapped error; an expired ctx
	// yields ErrConfirmationTimeout. After a timeout the transaction may
	// still land on the ledger later.
	Wait(ctx context.Context) (models.LedgerReceipt, error)
}
