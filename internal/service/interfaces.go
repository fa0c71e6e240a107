package service

import (
	"context"
	"time"

	"github.com/veridoc/veridoc/models"
)

// RegistryService is the reconciliation engine over the ledger facts and
// the local metadata cache. The ledger decides existence and revocation;
// metadata only decorates.
type RegistryService interface {
	// Issue anchors the document bytes on the ledger and stores the
	// descriptive metadata after confirmation.
	Issue(ctx context.Context, data []byte, meta models.UploadMetadata) (models.Document, error)

	// Verify resolves uploaded bytes against ledger truth.
	Verify(ctx context.Context, data []byte) (models.ResolvedDocument, error)

	// Resolve resolves a content hash against ledger truth.
	Resolve(ctx context.Context, hash string) (models.ResolvedDocument, error)

	// Revoke permanently revokes an anchored document.
	Revoke(ctx context.Context, hash string) (models.LedgerReceipt, error)

	// History lists metadata records with their statuses recomputed from
	// the ledger.
	History(ctx context.Context, filter models.DocumentFilter) ([]models.ResolvedDocument, error)

	// DashboardStats aggregates reconciled status counts.
	DashboardStats(ctx context.Context) (models.DashboardStats, error)

	// ReconcileAll recomputes every cached status from the ledger and
	// repairs stale projections. Returns the number of repaired records.
	ReconcileAll(ctx context.Context) (int, error)

	// SetPaused toggles the registry contract pause state.
	SetPaused(ctx context.Context, paused bool) (models.LedgerReceipt, error)

	// ContractStatus reports the current pause state.
	ContractStatus(ctx context.Context) (bool, error)
}

// AuthService handles operator authentication: password check, one-time
// login codes, and JWT session tokens.
type AuthService interface {
	// BootstrapAdmin creates the operator account if it does not exist
	// yet. Used at startup for initial provisioning.
	BootstrapAdmin(ctx context.Context, admin models.Admin, password string) error

	// RequestLoginCode verifies the password and mails a one-time code.
	RequestLoginCode(ctx context.Context, email, password string) error

	// VerifyLoginCode exchanges a live one-time code for a session token.
	VerifyLoginCode(ctx context.Context, email, code string) (models.Admin, models.Token, error)

	// ParseToken validates a raw JWT string.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// Notifier delivers outbound messages. Implementations are fire-and-forget:
// delivery failures are logged, never propagated to the caller.
type Notifier interface {
	// SendIssueNotification mails the document holder after a confirmed
	// issuance. verifyURL is the public verification deep link.
	SendIssueNotification(ctx context.Context, document models.Document, verifyURL string)

	// SendLoginCode mails a one-time login code to an operator.
	SendLoginCode(ctx context.Context, admin models.Admin, code string, ttl time.Duration)
}
