// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridoc/veridoc/internal/logger"
	"github.com/veridoc/veridoc/internal/metrics"
)

// mockWorker tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

type mockReconciler struct {
	sweeps atomic.Int64
	err    error
}

func (m *mockReconciler) ReconcileAll(context.Context) (int, error) {
	m.sweeps.Add(1)
	return 2, m.err
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, 1, w.runCount, "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// must not panic without any workers
	NewWorkers().Run()
	(&Workers{}).Run()
}

func TestReconcileWorker_SweepsPeriodically(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reconciler := &mockReconciler{}
	m := metrics.New(prometheus.NewRegistry())

	worker := NewReconcileWorker(ctx, reconciler, 5*time.Millisecond, m, logger.Nop())
	worker.Run()

	require.Eventually(t, func() bool {
		return reconciler.sweeps.Load() >= 2
	}, time.Second, time.Millisecond)

	assert.GreaterOrEqual(t, testutil.ToFloat64(m.ReconcileSweeps), float64(2))
}

func TestReconcileWorker_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	reconciler := &mockReconciler{}
	m := metrics.New(prometheus.NewRegistry())

	worker := NewReconcileWorker(ctx, reconciler, 5*time.Millisecond, m, logger.Nop())
	worker.Run()

	require.Eventually(t, func() bool {
		return reconciler.sweeps.Load() >= 1
	}, time.Second, time.Millisecond)

	cancel()
	time.Sleep(20 * time.Millisecond)
	after := reconciler.sweeps.Load()

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, reconciler.sweeps.Load(), "no sweeps after cancel")
}

func TestReconcileWorker_DisabledWithoutInterval(t *testing.T) {
	reconciler := &mockReconciler{}
	m := metrics.New(prometheus.NewRegistry())

	worker := NewReconcileWorker(context.Background(), reconciler, 0, m, logger.Nop())
	worker.Run()

	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, reconciler.sweeps.Load())
}

func TestReconcileWorker_SweepErrorDoesNotCountAsSweep(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reconciler := &mockReconciler{err: errors.New("node unreachable")}
	m := metrics.New(prometheus.NewRegistry())

	worker := NewReconcileWorker(ctx, reconciler, 5*time.Millisecond, m, logger.Nop())
	worker.Run()

	require.Eventually(t, func() bool {
		return reconciler.sweeps.Load() >= 1
	}, time.Second, time.Millisecond)

	assert.Zero(t, testutil.ToFloat64(m.ReconcileSweeps))
}
