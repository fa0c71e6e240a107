// SPDX-License-Identifier: Apache-2.0

package config

// Fallback values used when no configuration source supplies a setting.
const (
	defaultHTTPAddress         = "0.0.0.0:8080"
	defaultDBDriver            = "pgx"
	defaultRequestTimeout      = "30s"
	defaultTokenDuration       = "2h"
	defaultOTPCodeTTL          = "10m"
	defaultConfirmTimeout      = "90s"
	defaultReceiptPollInterval = "500ms"
	defaultReconcileLimit      = 4
)

// applyDefaults fills settings that remained zero after all sources were
// merged. Secrets (token sign key, signer identity, DSN) never get
// defaults; their absence is a validation error instead.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = mustDuration(defaultRequestTimeout)
	}

	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = defaultDBDriver
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = "veridoc-registry"
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = mustDuration(defaultTokenDuration)
	}
	if cfg.App.OTPCodeTTL == 0 {
		cfg.App.OTPCodeTTL = mustDuration(defaultOTPCodeTTL)
	}

	if cfg.Ledger.RequestTimeout == 0 {
		cfg.Ledger.RequestTimeout = mustDuration(defaultRequestTimeout)
	}
	if cfg.Ledger.ConfirmTimeout == 0 {
		cfg.Ledger.ConfirmTimeout = mustDuration(defaultConfirmTimeout)
	}
	if cfg.Ledger.ReceiptPollInterval == 0 {
		cfg.Ledger.ReceiptPollInterval = mustDuration(defaultReceiptPollInterval)
	}

	if cfg.Workers.ReconcileConcurrency <= 0 {
		cfg.Workers.ReconcileConcurrency = defaultReconcileLimit
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.DB.Driver != "pgx" && cfg.Storage.DB.Driver != "sqlite3" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Ledger.RPCURL == "" || cfg.Ledger.SignerIdentity == "" {
		return ErrInvalidLedgerConfigs
	}

	if cfg.Notify.Enabled && (cfg.Notify.SMTPHost == "" || cfg.Notify.From == "") {
		return ErrInvalidNotifyConfigs
	}

	return nil
}
