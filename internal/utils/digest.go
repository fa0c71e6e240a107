package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// ErrEmptyDocument is returned by DeriveContentID when the input byte
// sequence is empty. An empty upload has no meaningful identity.
var ErrEmptyDocument = errors.New("document bytes are empty")

// DeriveContentID computes the canonical content identifier for raw
// document bytes: the SHA-256 digest rendered as a 0x-prefixed lowercase
// hex string (bytes32-compatible with the ledger contract).
//
// The function is pure and deterministic: identical bytes always yield
// the identical identifier, regardless of call order or process. This is
// the idempotency anchor for the whole registry: resubmitting the same
// file derives the same identifier and short-circuits before any
// irreversible ledger write.
func DeriveContentID(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyDocument
	}

	sum := sha256.Sum256(data)

	return "0x" + hex.EncodeToString(sum[:]), nil
}

// HashOTPCode computes the SHA-256 digest of a one-time login code,
// hex-encoded without prefix. Only this hash is ever persisted; the
// plaintext code travels once, by email.
func HashOTPCode(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}
