package ledger

import (
	"fmt"
	"strings"
)

// mapRPCError translates a JSON-RPC error object from the ledger node into
// one of the package sentinel errors. Rejection reasons originate from the
// registry contract, so classification is by message substring; the
// original message is always preserved in the returned error.
func mapRPCError(rpcErr *rpcError) error {
	msg := strings.ToLower(rpcErr.Message)

	switch {
	case strings.Contains(msg, "already exists"), strings.Contains(msg, "already anchored"):
		return fmt.Errorf("%w: %s", ErrAlreadyAnchored, rpcErr.Message)
	case strings.Contains(msg, "paused"):
		return fmt.Errorf("%w: %s", ErrLedgerPaused, rpcErr.Message)
	case strings.Contains(msg, "does not exist"), strings.Contains(msg, "not found"):
		return fmt.Errorf("%w: %s", ErrFactNotFound, rpcErr.Message)
	default:
		return fmt.Errorf("%w: %s (code %d)", ErrWriteFailed, rpcErr.Message, rpcErr.Code)
	}
}
