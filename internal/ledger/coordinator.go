// SPDX-License-Identifier: Apache-2.0

package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/veridoc/veridoc/internal/logger"
	"github.com/veridoc/veridoc/models"
)

// Op is a ledger write submission executed under the coordinator's
// exclusive hold on the signing identity.
type Op func(ctx context.Context) (PendingWrite, error)

// Coordinator serializes state-changing ledger submissions so that a
// signing identity's transaction sequence is never used concurrently.
// Operations for the same identity run strictly one at a time in arrival
// order; each holds the identity until its transaction is confirmed,
// rejected, or timed out. Distinct identities do not block each other.
type Coordinator struct {
	identity       string
	confirmTimeout time.Duration

	mu    sync.Mutex
	lanes map[string]chan struct{}

	closeOnce sync.Once
	closed    chan struct{}

	logger *logger.Logger
}

// NewCoordinator constructs a write coordinator for the given signing
// identity. confirmTimeout bounds the wait for finality of each enqueued
// write.
func NewCoordinator(identity string, confirmTimeout time.Duration, log *logger.Logger) *Coordinator {
	return &Coordinator{
		identity:       identity,
		confirmTimeout: confirmTimeout,
		lanes:          make(map[string]chan struct{}),
		closed:         make(chan struct{}),
		logger:         log,
	}
}

// Enqueue runs op under the coordinator's signing identity and blocks
// until the resulting transaction is confirmed, rejected, or the
// confirmation window elapses. Waiting for a turn is bounded by ctx.
// Returns [ErrCoordinatorClosed] after [Coordinator.Close].
func (c *Coordinator) Enqueue(ctx context.Context, op Op) (models.LedgerReceipt, error) {
	return c.enqueueAs(ctx, c.identity, op)
}

func (c *Coordinator) enqueueAs(ctx context.Context, identity string, op Op) (models.LedgerReceipt, error) {
	log := c.logger.With().
		Str("func", "Coordinator.Enqueue").
		Str("signer", identity).
		Logger()

	lane := c.lane(identity)

	select {
	case lane <- struct{}{}:
	case <-ctx.Done():
		return models.LedgerReceipt{}, ctx.Err()
	case <-c.closed:
		return models.LedgerReceipt{}, ErrCoordinatorClosed
	}
	defer func() { <-lane }()

	select {
	case <-c.closed:
		return models.LedgerReceipt{}, ErrCoordinatorClosed
	default:
	}

	start := time.Now()

	pending, err := op(ctx)
	if err != nil {
		return models.LedgerReceipt{}, err
	}

	waitCtx, cancel := context.WithTimeout(ctx, c.confirmTimeout)
	defer cancel()

	receipt, err := pending.Wait(waitCtx)
	if err != nil {
		log.Warn().Err(err).Str("tx_hash", pending.TxHash()).Msg("ledger write not confirmed")
		return models.LedgerReceipt{}, err
	}

	log.Info().
		Str("tx_hash", receipt.TxHash).
		Int64("block_number", receipt.BlockNumber).
		Dur("elapsed", time.Since(start)).
		Msg("ledger write confirmed")

	return receipt, nil
}

// lane returns the single-slot channel acting as the FIFO mutex for the
// given identity, creating it on first use.
func (c *Coordinator) lane(identity string) chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	lane, ok := c.lanes[identity]
	if !ok {
		lane = make(chan struct{}, 1)
		c.lanes[identity] = lane
	}

	return lane
}

// Close rejects all future Enqueue calls. Operations already holding an
// identity run to completion.
func (c *Coordinator) Close() {
	c.closeOnce.Do(func() { close(c.closed) })
}
