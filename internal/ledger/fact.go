package ledger

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/veridoc/veridoc/models"
)

// factTupleLen is the arity of the node's getVerificationData result:
// [active, issuedAt, expiresAt, revokedAt, issuer, issuerName].
const factTupleLen = 6

// decodeFactTuple converts the node's positional mixed-type tuple into a
// typed [models.LedgerFact]. This is the only place the tuple shape is
// known; everything past the facade works with the struct.
//
// Timestamps arrive either as JSON numbers or as decimal strings depending
// on the gateway version, so both are accepted.
func decodeFactTuple(raw json.RawMessage, hash string) (models.LedgerFact, error) {
	var tuple []json.RawMessage
	if err := json.Unmarshal(raw, &tuple); err != nil {
		return models.LedgerFact{}, fmt.Errorf("malformed verification tuple: %w", err)
	}
	if len(tuple) != factTupleLen {
		return models.LedgerFact{}, fmt.Errorf("malformed verification tuple: got %d elements, want %d", len(tuple), factTupleLen)
	}

	fact := models.LedgerFact{Hash: hash}

	if err := json.Unmarshal(tuple[0], &fact.Active); err != nil {
		return models.LedgerFact{}, fmt.Errorf("verification tuple field active: %w", err)
	}

	var err error
	if fact.IssuedAt, err = decodeUnix(tuple[1]); err != nil {
		return models.LedgerFact{}, fmt.Errorf("verification tuple field issuedAt: %w", err)
	}
	if fact.ExpiresAt, err = decodeUnix(tuple[2]); err != nil {
		return models.LedgerFact{}, fmt.Errorf("verification tuple field expiresAt: %w", err)
	}
	if fact.RevokedAt, err = decodeUnix(tuple[3]); err != nil {
		return models.LedgerFact{}, fmt.Errorf("verification tuple field revokedAt: %w", err)
	}

	if err := json.Unmarshal(tuple[4], &fact.Issuer); err != nil {
		return models.LedgerFact{}, fmt.Errorf("verification tuple field issuer: %w", err)
	}
	if err := json.Unmarshal(tuple[5], &fact.IssuerName); err != nil {
		return models.LedgerFact{}, fmt.Errorf("verification tuple field issuerName: %w", err)
	}

	return fact, nil
}

// decodeUnix parses a unix timestamp that may be encoded as a JSON number
// or as a decimal string.
func decodeUnix(raw json.RawMessage) (int64, error) {
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("neither number nor string: %s", string(raw))
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("non-decimal string %q: %w", s, err)
	}

	return n, nil
}
