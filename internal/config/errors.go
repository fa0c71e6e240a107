package config

import (
	"errors"
	"time"
)

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid metadata store settings
	// (for example, empty DSN or an unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidLedgerConfigs indicates invalid ledger node settings
	// (for example, missing RPC URL or signer identity).
	ErrInvalidLedgerConfigs = errors.New("invalid ledger configuration")

	// ErrInvalidNotifyConfigs indicates that SMTP delivery is enabled but
	// the relay host or sender address is missing.
	ErrInvalidNotifyConfigs = errors.New("invalid notify configuration")
)

// mustDuration parses a compile-time constant duration literal. Panics on
// malformed input, which can only happen through a programming error in
// the defaults table.
func mustDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		panic(err)
	}
	return d
}
