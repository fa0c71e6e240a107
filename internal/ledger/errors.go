package ledger

import "errors"

var (
	// ErrFactNotFound is returned by GetFact when the hash was never
	// anchored on the ledger.
	ErrFactNotFound = errors.New("ledger fact not found")

	// ErrAlreadyAnchored is returned when a store submission is rejected
	// because the hash already has an active registration.
	ErrAlreadyAnchored = errors.New("hash already anchored")

	// ErrLedgerPaused is returned when the registry contract rejects a
	// state-changing operation because it is paused.
	ErrLedgerPaused = errors.New("ledger registry paused")

	// ErrWriteFailed wraps ledger-reported rejection reasons for submitted
	// transactions.
	ErrWriteFailed = errors.New("ledger write failed")

	// ErrUnreachable wraps transport-level failures talking to the node.
	ErrUnreachable = errors.New("ledger node unreachable")

	// ErrConfirmationTimeout is returned by PendingWrite.Wait when the
	// confirmation window elapses before the transaction finalizes.
	ErrConfirmationTimeout = errors.New("ledger confirmation timeout")

	// ErrCoordinatorClosed is returned by Enqueue after the coordinator
	// has been shut down.
	ErrCoordinatorClosed = errors.New("write coordinator closed")
)
