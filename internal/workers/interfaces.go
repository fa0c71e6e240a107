// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to block for the duration of their work
// or spawn goroutines internally.
type Worker interface {
	Run()
}

// Reconciler runs one reconciliation sweep over the local metadata cache
// and reports how many rows were repaired.
type Reconciler interface {
	ReconcileAll(ctx context.Context) (int, error)
}
