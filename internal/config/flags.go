package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver ("pgx" or "sqlite3")
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "2h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-ledger-rpc-url ledger node JSON-RPC endpoint
//	-ledger-contract registry contract address
//	-ledger-signer signing identity address
//	-confirm-timeout ledger write confirmation timeout
//	-reconcile-interval background reconciliation period
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var databaseDSN string
	var databaseDriver string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var ledgerRPCURL string
	var ledgerContract string
	var ledgerSigner string
	var confirmTimeout time.Duration
	var reconcileInterval time.Duration

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "driver", "", "Database driver (pgx or sqlite3)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 2h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&ledgerRPCURL, "ledger-rpc-url", "", "Ledger node JSON-RPC endpoint")
	flag.StringVar(&ledgerContract, "ledger-contract", "", "Registry contract address")
	flag.StringVar(&ledgerSigner, "ledger-signer", "", "Signing identity address")
	flag.DurationVar(&confirmTimeout, "confirm-timeout", 0, "Ledger confirmation timeout (e.g., 90s)")
	flag.DurationVar(&reconcileInterval, "reconcile-interval", 0, "Background reconciliation period (e.g., 10m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Ledger: Ledger{
			RPCURL:          ledgerRPCURL,
			ContractAddress: ledgerContract,
			SignerIdentity:  ledgerSigner,
			ConfirmTimeout:  confirmTimeout,
		},
		Workers: Workers{
			ReconcileInterval: reconcileInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
