// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"time"

	"github.com/veridoc/veridoc/internal/logger"
	"github.com/veridoc/veridoc/internal/metrics"
)

// ReconcileWorker periodically re-reads every cached document against the
// ledger and repairs rows whose cached status drifted. The ledger is the
// source of truth, so a sweep only ever moves the cache toward it.
type ReconcileWorker struct {
	ctx      context.Context
	service  Reconciler
	interval time.Duration
	metrics  *metrics.Metrics
	logger   *logger.Logger
}

// NewReconcileWorker builds the periodic reconciliation worker. The worker
// stops when ctx is canceled. A zero or negative interval disables the
// worker entirely.
func NewReconcileWorker(ctx context.Context, service Reconciler, interval time.Duration, m *metrics.Metrics, log *logger.Logger) *ReconcileWorker {
	return &ReconcileWorker{
		ctx:      ctx,
		service:  service,
		interval: interval,
		metrics:  m,
		logger:   log,
	}
}

// Run starts the sweep loop in its own goroutine and returns immediately.
func (w *ReconcileWorker) Run() {
	log := &logger.Logger{Logger: w.logger.With().Str("worker", "reconcile").Logger()}

	if w.interval <= 0 {
		log.Info().Msg("reconciliation worker disabled")
		return
	}

	log.Info().Dur("interval", w.interval).Msg("reconciliation worker started")

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-w.ctx.Done():
				log.Info().Msg("reconciliation worker stopped")
				return
			case <-ticker.C:
				w.sweep(log)
			}
		}
	}()
}

func (w *ReconcileWorker) sweep(log *logger.Logger) {
	started := time.Now()

	repaired, err := w.service.ReconcileAll(w.ctx)
	if err != nil {
		log.Err(err).Msg("reconciliation sweep failed")
		return
	}

	w.metrics.ReconcileSweeps.Inc()

	log.Info().
		Int("repaired", repaired).
		Dur("took", time.Since(started)).
		Msg("reconciliation sweep finished")
}
