// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/veridoc/veridoc/internal/config"
	"github.com/veridoc/veridoc/internal/ledger"
	"github.com/veridoc/veridoc/internal/logger"
	"github.com/veridoc/veridoc/internal/metrics"
	"github.com/veridoc/veridoc/internal/store"
	"github.com/veridoc/veridoc/internal/utils"
	"github.com/veridoc/veridoc/models"
)

// registryService is the concrete implementation of [RegistryService].
//
// Write path: every state-changing ledger call goes through the write
// coordinator, which serializes submissions per signing identity and blocks
// until confirmation. Metadata is written only after the ledger confirms;
// a metadata failure at that point is an orphan condition: logged, never
// returned, and repaired later by the reconciliation sweep.
//
// Read path: the ledger decides existence and revocation; the metadata
// cache only decorates the result.
type registryService struct {
	documents   store.DocumentRepository
	ledger      ledger.Client
	coordinator *ledger.Coordinator
	notifier    Notifier
	metrics     *metrics.Metrics

	verifyBaseURL  string
	reconcileLimit int

	logger *logger.Logger
}

// NewRegistryService constructs a [RegistryService] wired to the metadata
// repository, the ledger client, and the write coordinator.
func NewRegistryService(
	documents store.DocumentRepository,
	client ledger.Client,
	coordinator *ledger.Coordinator,
	notifier Notifier,
	m *metrics.Metrics,
	appCfg config.App,
	workersCfg config.Workers,
	log *logger.Logger,
) RegistryService {
	limit := workersCfg.ReconcileConcurrency
	if limit <= 0 {
		limit = 4
	}

	return &registryService{
		documents:      documents,
		ledger:         client,
		coordinator:    coordinator,
		notifier:       notifier,
		metrics:        m,
		verifyBaseURL:  strings.TrimRight(appCfg.VerifyBaseURL, "/"),
		reconcileLimit: limit,
		logger:         log,
	}
}

// Issue derives the content hash, anchors it on the ledger through the
// coordinator, and stores the metadata after confirmation.
//
// Returns:
//   - [ErrAlreadyRegistered] if a fact already exists for the hash.
//   - ledger errors (paused, unreachable, confirmation timeout) unchanged.
//
// A metadata write failure after a confirmed ledger write does not fail
// the operation: the ledger fact is the registration.
func (s *registryService) Issue(ctx context.Context, data []byte, meta models.UploadMetadata) (models.Document, error) {
	log := logger.FromContext(ctx)

	hash, err := utils.DeriveContentID(data)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	// check-before-write: a known fact means the submission would revert
	if _, err := s.ledger.GetFact(ctx, hash); err == nil {
		return models.Document{}, fmt.Errorf("%w: %s", ErrAlreadyRegistered, hash)
	} else if !errors.Is(err, ledger.ErrFactNotFound) {
		return models.Document{}, fmt.Errorf("issuance precheck failed: %w", err)
	}

	start := time.Now()
	receipt, err := s.coordinator.Enqueue(ctx, func(ctx context.Context) (ledger.PendingWrite, error) {
		return s.ledger.StoreHash(ctx, hash, meta.ValidityDays)
	})
	if err != nil {
		if errors.Is(err, ledger.ErrAlreadyAnchored) {
			return models.Document{}, fmt.Errorf("%w: %s", ErrAlreadyRegistered, hash)
		}
		log.Err(err).Str("hash", hash).Msg("issuance write failed")
		return models.Document{}, err
	}
	s.metrics.DocumentsIssued.Inc()
	s.metrics.LedgerWriteDuration.Observe(time.Since(start).Seconds())

	document := models.Document{
		Hash:          hash,
		DocumentType:  meta.DocumentType,
		PrimaryName:   meta.PrimaryName,
		UploadDate:    meta.UploadDate,
		ValidityDays:  meta.ValidityDays,
		ExpiryDate:    models.ExpiryDisplay(meta.UploadDate, meta.ValidityDays),
		ContactEmail:  meta.ContactEmail,
		ContactMobile: meta.ContactMobile,
		TxHash:        receipt.TxHash,
		LocalStatus:   models.StatusActive,
	}

	saved, err := s.documents.Upsert(ctx, document)
	if err != nil {
		// the ledger write is confirmed: report success and let the
		// reconciliation sweep surface the orphaned fact
		log.Err(err).Str("hash", hash).Str("tx_hash", receipt.TxHash).
			Msg("orphaned ledger fact: metadata write failed after confirmation")
		saved = document
	}

	if saved.ContactEmail != "" {
		s.notifier.SendIssueNotification(ctx, saved, s.verifyURL(hash))
	}

	return saved, nil
}

// Verify resolves uploaded document bytes against ledger truth.
func (s *registryService) Verify(ctx context.Context, data []byte) (models.ResolvedDocument, error) {
	hash, err := utils.DeriveContentID(data)
	if err != nil {
		return models.ResolvedDocument{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.Resolve(ctx, hash)
}

// Resolve resolves a content hash against ledger truth, decorated with
// local metadata when present. A missing fact is a valid outcome
// (Status=NotFound), not an error.
func (s *registryService) Resolve(ctx context.Context, hash string) (models.ResolvedDocument, error) {
	log := logger.FromContext(ctx)

	if hash == "" {
		return models.ResolvedDocument{}, ErrInvalidDataProvided
	}

	fact, err := s.ledger.GetFact(ctx, hash)
	found := err == nil
	if err != nil && !errors.Is(err, ledger.ErrFactNotFound) {
		return models.ResolvedDocument{}, fmt.Errorf("ledger lookup failed: %w", err)
	}

	var document models.Document
	var hasMetadata bool
	if found {
		// a cache row without a ledger fact is an orphan; it never makes a
		// missing document look registered, so metadata is skipped entirely
		document, err = s.documents.GetByHash(ctx, hash)
		hasMetadata = err == nil
		if err != nil && !errors.Is(err, store.ErrDocumentNotFound) {
			log.Err(err).Str("hash", hash).Msg("metadata lookup failed, resolving from ledger only")
		}
	}

	resolved := mergeResolved(hash, fact, found, document, hasMetadata)
	s.metrics.Verifications.WithLabelValues(string(resolved.Status)).Inc()

	return resolved, nil
}

// Revoke permanently revokes an anchored document.
//
// Returns [ErrNotRevocable] when the hash has no fact or the fact is
// already revoked. After the confirmed ledger write, the cached status is
// updated; a failure there is logged and tolerated.
func (s *registryService) Revoke(ctx context.Context, hash string) (models.LedgerReceipt, error) {
	log := logger.FromContext(ctx)

	if hash == "" {
		return models.LedgerReceipt{}, ErrInvalidDataProvided
	}

	fact, err := s.ledger.GetFact(ctx, hash)
	if errors.Is(err, ledger.ErrFactNotFound) {
		return models.LedgerReceipt{}, fmt.Errorf("%w: not registered", ErrNotRevocable)
	}
	if err != nil {
		return models.LedgerReceipt{}, fmt.Errorf("revocation precheck failed: %w", err)
	}
	if fact.Revoked() {
		return models.LedgerReceipt{}, fmt.Errorf("%w: already revoked", ErrNotRevocable)
	}

	start := time.Now()
	receipt, err := s.coordinator.Enqueue(ctx, func(ctx context.Context) (ledger.PendingWrite, error) {
		return s.ledger.RevokeHash(ctx, hash)
	})
	if err != nil {
		log.Err(err).Str("hash", hash).Msg("revocation write failed")
		return models.LedgerReceipt{}, err
	}
	s.metrics.DocumentsRevoked.Inc()
	s.metrics.LedgerWriteDuration.Observe(time.Since(start).Seconds())

	if err := s.documents.UpdateStatus(ctx, hash, models.StatusRevoked, receipt.TxHash); err != nil {
		// ledger already holds the revocation; the sweep will repair the cache
		log.Err(err).Str("hash", hash).Str("tx_hash", receipt.TxHash).
			Msg("cached status not updated after confirmed revocation")
	}

	return receipt, nil
}

// History lists metadata records matching the filter with every status
// recomputed from the ledger. The cached localStatus is never trusted;
// stale projections found along the way are repaired.
func (s *registryService) History(ctx context.Context, filter models.DocumentFilter) ([]models.ResolvedDocument, error) {
	documents, err := s.documents.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("history listing failed: %w", err)
	}

	resolved, _, err := s.reconcileDocuments(ctx, documents)
	if err != nil {
		return nil, err
	}

	return resolved, nil
}

// DashboardStats aggregates reconciled status counts. Statuses come from
// the same ledger-recomputed views as History.
func (s *registryService) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	resolved, err := s.History(ctx, models.DocumentFilter{})
	if err != nil {
		return models.DashboardStats{}, err
	}

	midnight := time.Now().UTC().Truncate(24 * time.Hour)
	issuedToday, err := s.documents.CountCreatedSince(ctx, midnight)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("issued-today count failed: %w", err)
	}

	stats := models.DashboardStats{
		TotalDocuments: len(resolved),
		IssuedToday:    int(issuedToday),
	}
	for _, view := range resolved {
		switch view.Status {
		case models.StatusActive:
			stats.ActiveDocuments++
		case models.StatusRevoked:
			stats.RevokedDocuments++
		case models.StatusInactive:
			stats.InactiveDocuments++
		}
	}

	return stats, nil
}

// ReconcileAll recomputes every cached status from the ledger. Used by the
// background sweep.
func (s *registryService) ReconcileAll(ctx context.Context) (int, error) {
	documents, err := s.documents.List(ctx, models.DocumentFilter{})
	if err != nil {
		return 0, fmt.Errorf("reconciliation listing failed: %w", err)
	}

	_, repaired, err := s.reconcileDocuments(ctx, documents)
	return repaired, err
}

// reconcileDocuments resolves each record against the ledger with bounded
// concurrency and repairs stale cached statuses. Results keep the input
// order.
func (s *registryService) reconcileDocuments(ctx context.Context, documents []models.Document) ([]models.ResolvedDocument, int, error) {
	log := logger.FromContext(ctx)

	resolved := make([]models.ResolvedDocument, len(documents))
	repairs := make([]bool, len(documents))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.reconcileLimit)

	for i, document := range documents {
		g.Go(func() error {
			fact, err := s.ledger.GetFact(gctx, document.Hash)
			found := err == nil
			if err != nil && !errors.Is(err, ledger.ErrFactNotFound) {
				return fmt.Errorf("reconciling %s: %w", document.Hash, err)
			}

			resolved[i] = mergeResolved(document.Hash, fact, found, document, true)

			if status := resolved[i].Status; status != document.LocalStatus {
				if err := s.documents.UpdateStatus(gctx, document.Hash, status, ""); err != nil {
					log.Err(err).Str("hash", document.Hash).Msg("stale status repair failed")
				} else {
					repairs[i] = true
				}
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	repaired := 0
	for _, r := range repairs {
		if r {
			repaired++
		}
	}
	if repaired > 0 {
		s.metrics.ReconcileRepairs.Add(float64(repaired))
	}

	return resolved, repaired, nil
}

// SetPaused toggles the registry contract pause state through the
// coordinator. The ledger's own rejection of redundant toggles is
// authoritative and surfaces unchanged.
func (s *registryService) SetPaused(ctx context.Context, paused bool) (models.LedgerReceipt, error) {
	return s.coordinator.Enqueue(ctx, func(ctx context.Context) (ledger.PendingWrite, error) {
		return s.ledger.SetPaused(ctx, paused)
	})
}

// ContractStatus reports the current pause state of the registry contract.
func (s *registryService) ContractStatus(ctx context.Context) (bool, error) {
	return s.ledger.Paused(ctx)
}

func (s *registryService) verifyURL(hash string) string {
	if s.verifyBaseURL == "" {
		return ""
	}
	return s.verifyBaseURL + "/" + hash
}
