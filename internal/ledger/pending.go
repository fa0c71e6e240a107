package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/veridoc/veridoc/models"
)

// receiptStatusOK is the node's status value for a finalized, successful
// transaction. Zero means the transaction landed but was reverted.
const receiptStatusOK = 1

type receiptResult struct {
	TxHash      string `json:"txHash"`
	BlockNumber int64  `json:"blockNumber"`
	Status      int    `json:"status"`
	Reason      string `json:"reason"`
}

// pendingWrite is the [PendingWrite] produced by rpcClient submissions.
type pendingWrite struct {
	txHash string
	client *rpcClient
}

// TxHash implements [PendingWrite].
func (p *pendingWrite) TxHash() string { return p.txHash }

// Wait implements [PendingWrite]. It polls getReceipt at the configured
// interval until the node reports finality or ctx expires.
func (p *pendingWrite) Wait(ctx context.Context) (models.LedgerReceipt, error) {
	log := p.client.logger.With().
		Str("func", "pendingWrite.Wait").
		Str("tx_hash", p.txHash).
		Logger()

	ticker := time.NewTicker(p.client.pollInterval)
	defer ticker.Stop()

	for {
		receipt, found, err := p.poll(ctx)
		if err != nil {
			return models.LedgerReceipt{}, err
		}
		if found {
			log.Debug().Int64("block_number", receipt.BlockNumber).Msg("ledger write confirmed")
			return receipt, nil
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return models.LedgerReceipt{}, fmt.Errorf("%w: tx %s", ErrConfirmationTimeout, p.txHash)
			}
			return models.LedgerReceipt{}, ctx.Err()
		case <-ticker.C:
		}
	}
}

// poll fetches the receipt once. found is false while the transaction is
// still pending (node returns a null result).
func (p *pendingWrite) poll(ctx context.Context) (models.LedgerReceipt, bool, error) {
	var res *receiptResult
	if err := p.client.call(ctx, methodGetReceipt, []any{p.txHash}, &res); err != nil {
		return models.LedgerReceipt{}, false, err
	}
	if res == nil {
		return models.LedgerReceipt{}, false, nil
	}

	if res.Status != receiptStatusOK {
		reason := res.Reason
		if reason == "" {
			reason = "transaction reverted"
		}
		return models.LedgerReceipt{}, false, fmt.Errorf("%w: tx %s: %s", ErrWriteFailed, p.txHash, reason)
	}

	txHash := res.TxHash
	if txHash == "" {
		txHash = p.txHash
	}

	return models.LedgerReceipt{TxHash: txHash, BlockNumber: res.BlockNumber}, true, nil
}
