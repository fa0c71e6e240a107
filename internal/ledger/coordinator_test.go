package ledger

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridoc/veridoc/internal/logger"
	"github.com/veridoc/veridoc/models"
)

// stubPending is a PendingWrite that confirms after a fixed delay.
type stubPending struct {
	txHash string
	delay  time.Duration
	err    error
}

func (s *stubPending) TxHash() string { return s.txHash }

func (s *stubPending) Wait(ctx context.Context) (models.LedgerReceipt, error) {
	select {
	case <-ctx.Done():
		return models.LedgerReceipt{}, ctx.Err()
	case <-time.After(s.delay):
	}
	if s.err != nil {
		return models.LedgerReceipt{}, s.err
	}
	return models.LedgerReceipt{TxHash: s.txHash, BlockNumber: 1}, nil
}

func TestCoordinator_SerializesSameIdentity(t *testing.T) {
	coordinator := NewCoordinator("0xsigner", time.Second, logger.Nop())
	defer coordinator.Close()

	var active, maxActive atomic.Int64

	op := func(ctx context.Context) (PendingWrite, error) {
		n := active.Add(1)
		for {
			seen := maxActive.Load()
			if n <= seen || maxActive.CompareAndSwap(seen, n) {
				break
			}
		}
		defer active.Add(-1)

		return &stubPending{txHash: "0xtx", delay: 10 * time.Millisecond}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			receipt, err := coordinator.Enqueue(context.Background(), op)
			assert.NoError(t, err)
			assert.Equal(t, "0xtx", receipt.TxHash)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, maxActive.Load(), "submissions for one identity must never overlap")
}

func TestCoordinator_DistinctIdentitiesDoNotBlock(t *testing.T) {
	coordinator := NewCoordinator("0xsigner-a", time.Second, logger.Nop())
	defer coordinator.Close()

	slowStarted := make(chan struct{})
	release := make(chan struct{})

	go func() {
		_, err := coordinator.enqueueAs(context.Background(), "0xsigner-a", func(ctx context.Context) (PendingWrite, error) {
			close(slowStarted)
			<-release
			return &stubPending{txHash: "0xslow"}, nil
		})
		assert.NoError(t, err)
	}()

	<-slowStarted

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := coordinator.enqueueAs(context.Background(), "0xsigner-b", func(ctx context.Context) (PendingWrite, error) {
			return &stubPending{txHash: "0xfast"}, nil
		})
		assert.NoError(t, err)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second identity was blocked by the first")
	}

	close(release)
}

func TestCoordinator_EnqueueCtxCanceledWhileQueued(t *testing.T) {
	coordinator := NewCoordinator("0xsigner", time.Second, logger.Nop())
	defer coordinator.Close()

	holding := make(chan struct{})
	release := make(chan struct{})

	go func() {
		_, _ = coordinator.Enqueue(context.Background(), func(ctx context.Context) (PendingWrite, error) {
			close(holding)
			<-release
			return &stubPending{txHash: "0xtx"}, nil
		})
	}()
	<-holding
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := coordinator.Enqueue(ctx, func(ctx context.Context) (PendingWrite, error) {
		t.Fatal("op must not run for a canceled caller")
		return nil, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCoordinator_ConfirmTimeoutBoundsWait(t *testing.T) {
	coordinator := NewCoordinator("0xsigner", 20*time.Millisecond, logger.Nop())
	defer coordinator.Close()

	_, err := coordinator.Enqueue(context.Background(), func(ctx context.Context) (PendingWrite, error) {
		return &stubPending{txHash: "0xtx", delay: time.Second}, nil
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCoordinator_Close(t *testing.T) {
	coordinator := NewCoordinator("0xsigner", time.Second, logger.Nop())
	coordinator.Close()
	coordinator.Close() // idempotent

	_, err := coordinator.Enqueue(context.Background(), func(ctx context.Context) (PendingWrite, error) {
		return &stubPending{txHash: "0xtx"}, nil
	})
	require.ErrorIs(t, err, ErrCoordinatorClosed)
}
