// SPDX-License-Identifier: Apache-2.0

package service

import (
	"github.com/veridoc/veridoc/models"
)

// ResolveStatus derives the document status from ledger truth alone.
// Precedence: a missing fact is NotFound; a revocation timestamp wins over
// everything; a cleared activation flag is Inactive; otherwise Active.
// Expiry never changes the resolved status; it is display-only.
func ResolveStatus(fact models.LedgerFact, found bool) models.Status {
	switch {
	case !found:
		return models.StatusNotFound
	case fact.Revoked():
		return models.StatusRevoked
	case !fact.Active:
		return models.StatusInactive
	default:
		return models.StatusActive
	}
}

// mergeResolved combines a ledger fact (authoritative) with an optional
// metadata record (descriptive) into the per-request view.
func mergeResolved(hash string, fact models.LedgerFact, found bool, document models.Document, hasMetadata bool) models.ResolvedDocument {
	resolved := models.ResolvedDocument{
		Hash:   hash,
		Status: ResolveStatus(fact, found),
	}

	if found {
		resolved.IssuedAt = fact.IssuedAt
		resolved.ExpiresAt = fact.ExpiresAt
		resolved.RevokedAt = fact.RevokedAt
		resolved.Issuer = fact.Issuer
		resolved.IssuerName = fact.IssuerName
	}

	if hasMetadata {
		resolved.HasMetadata = true
		resolved.DocumentType = document.DocumentType
		resolved.PrimaryName = document.PrimaryName
		resolved.UploadDate = document.UploadDate
		resolved.ExpiryDate = document.ExpiryDate
		resolved.TxHash = document.TxHash
	}

	return resolved
}
