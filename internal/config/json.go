package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations, so operators can keep a readable config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		OTPCodeTTL    Duration `json:"otp_code_ttl"`
		VerifyBaseURL string   `json:"verify_base_url"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Ledger struct {
		RPCURL              string   `json:"rpc_url"`
		ContractAddress     string   `json:"contract_address"`
		SignerIdentity      string   `json:"signer_identity"`
		RequestTimeout      Duration `json:"request_timeout"`
		ConfirmTimeout      Duration `json:"confirm_timeout"`
		ReceiptPollInterval Duration `json:"receipt_poll_interval"`
	} `json:"ledger,omitempty"`

	Notify struct {
		Enabled  bool   `json:"enabled"`
		SMTPHost string `json:"smtp_host"`
		SMTPPort int    `json:"smtp_port"`
		Username string `json:"smtp_username"`
		Password string `json:"smtp_password"`
		From     string `json:"from"`
	} `json:"notify,omitempty"`

	Workers struct {
		ReconcileInterval    Duration `json:"reconcile_interval"`
		ReconcileConcurrency int      `json:"reconcile_concurrency"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			OTPCodeTTL:    time.Duration(jsonCfg.App.OTPCodeTTL),
			VerifyBaseURL: jsonCfg.App.VerifyBaseURL,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Ledger: Ledger{
			RPCURL:              jsonCfg.Ledger.RPCURL,
			ContractAddress:     jsonCfg.Ledger.ContractAddress,
			SignerIdentity:      jsonCfg.Ledger.SignerIdentity,
			RequestTimeout:      time.Duration(jsonCfg.Ledger.RequestTimeout),
			ConfirmTimeout:      time.Duration(jsonCfg.Ledger.ConfirmTimeout),
			ReceiptPollInterval: time.Duration(jsonCfg.Ledger.ReceiptPollInterval),
		},
		Notify: Notify{
			Enabled:  jsonCfg.Notify.Enabled,
			SMTPHost: jsonCfg.Notify.SMTPHost,
			SMTPPort: jsonCfg.Notify.SMTPPort,
			Username: jsonCfg.Notify.Username,
			Password: jsonCfg.Notify.Password,
			From:     jsonCfg.Notify.From,
		},
		Workers: Workers{
			ReconcileInterval:    time.Duration(jsonCfg.Workers.ReconcileInterval),
			ReconcileConcurrency: jsonCfg.Workers.ReconcileConcurrency,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
