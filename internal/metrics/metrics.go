// SPDX-License-Identifier: Apache-2.0

// Package metrics defines the Prometheus instruments of the registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles every instrument the registry exports. Construct one per
// process with [New] and share it; all instruments are safe for concurrent
// use.
type Metrics struct {
	// DocumentsIssued counts confirmed issuance writes.
	DocumentsIssued prometheus.Counter

	// DocumentsRevoked counts confirmed revocation writes.
	DocumentsRevoked prometheus.Counter

	// Verifications counts resolved verification requests by outcome
	// status (Active, Revoked, Inactive, NotFound).
	Verifications *prometheus.CounterVec

	// LedgerWriteDuration observes the submit-to-confirmation latency of
	// coordinated ledger writes.
	LedgerWriteDuration prometheus.Histogram

	// ReconcileSweeps counts completed background reconciliation sweeps.
	ReconcileSweeps prometheus.Counter

	// ReconcileRepairs counts cached statuses rewritten because the ledger
	// disagreed with the local projection.
	ReconcileRepairs prometheus.Counter
}

// New registers all instruments against reg and returns the bundle. Tests
// pass a fresh prometheus.NewRegistry() so parallel packages never collide
// on the default registry.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		DocumentsIssued: factory.NewCounter(prometheus.CounterOpts{
			Name: "registry_documents_issued_total",
			Help: "Number of documents anchored on the ledger.",
		}),
		DocumentsRevoked: factory.NewCounter(prometheus.CounterOpts{
			Name: "registry_documents_revoked_total",
			Help: "Number of documents revoked on the ledger.",
		}),
		Verifications: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "registry_verifications_total",
			Help: "Number of verification requests by resolved status.",
		}, []string{"status"}),
		LedgerWriteDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "registry_ledger_write_duration_seconds",
			Help:    "Latency from ledger write submission to confirmation.",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
		}),
		ReconcileSweeps: factory.NewCounter(prometheus.CounterOpts{
			Name: "registry_reconcile_sweeps_total",
			Help: "Number of completed background reconciliation sweeps.",
		}),
		ReconcileRepairs: factory.NewCounter(prometheus.CounterOpts{
			Name: "registry_reconcile_repairs_total",
			Help: "Number of cached statuses repaired from ledger truth.",
		}),
	}
}
