// SPDX-License-Identifier: Apache-2.0

package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/veridoc/veridoc/internal/config"
	"github.com/veridoc/veridoc/internal/logger"
	"github.com/veridoc/veridoc/internal/utils"
	"github.com/veridoc/veridoc/models"
)

// Ledger node JSON-RPC method names.
const (
	methodGetVerificationData = "registry_getVerificationData"
	methodStoreHash           = "registry_storeHash"
	methodRevokeHash          = "registry_revokeHash"
	methodPaused              = "registry_paused"
	methodSetPaused           = "registry_setPaused"
	methodGetReceipt          = "registry_getReceipt"
)

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int64  `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int64           `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

// rpcClient is the JSON-RPC 2.0 implementation of [Client]. All calls go
// through a single gateway endpoint and target the configured registry
// contract.
type rpcClient struct {
	client       *utils.HTTPClient
	contract     string
	pollInterval time.Duration
	nextID       atomic.Int64

	logger *logger.Logger
}

// NewRPCClient constructs a [Client] talking JSON-RPC 2.0 to the ledger
// node at ledgerCfg.RPCURL. Returns an error if the URL is empty or
// malformed.
func NewRPCClient(ledgerCfg config.Ledger, log *logger.Logger) (Client, error) {
	baseURL, err := normalizeNodeURL(ledgerCfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("invalid ledger rpc url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(ledgerCfg.RequestTimeout)

	return &rpcClient{
		client:       client,
		contract:     ledgerCfg.ContractAddress,
		pollInterval: ledgerCfg.ReceiptPollInterval,
		logger:       log,
	}, nil
}

func normalizeNodeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty url")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("url must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetFact implements [Client]. A tuple with issuedAt of zero means the
// hash was never anchored and is reported as [ErrFactNotFound].
func (c *rpcClient) GetFact(ctx context.Context, hash string) (models.LedgerFact, error) {
	var raw json.RawMessage
	if err := c.call(ctx, methodGetVerificationData, []any{c.contract, hash}, &raw); err != nil {
		return models.LedgerFact{}, err
	}

	fact, err := decodeFactTuple(raw, hash)
	if err != nil {
		return models.LedgerFact{}, err
	}

	if fact.IssuedAt == 0 {
		return models.LedgerFact{}, ErrFactNotFound
	}

	return fact, nil
}

// StoreHash implements [Client].
func (c *rpcClient) StoreHash(ctx context.Context, hash string, validityDays int64) (PendingWrite, error) {
	return c.submit(ctx, methodStoreHash, []any{c.contract, hash, validityDays})
}

// RevokeHash implements [Client].
func (c *rpcClient) RevokeHash(ctx context.Context, hash string) (PendingWrite, error) {
	return c.submit(ctx, methodRevokeHash, []any{c.contract, hash})
}

// Paused implements [Client].
func (c *rpcClient) Paused(ctx context.Context) (bool, error) {
	var paused bool
	if err := c.call(ctx, methodPaused, []any{c.contract}, &paused); err != nil {
		return false, err
	}

	return paused, nil
}

// SetPaused implements [Client].
func (c *rpcClient) SetPaused(ctx context.Context, paused bool) (PendingWrite, error) {
	return c.submit(ctx, methodSetPaused, []any{c.contract, paused})
}

// submit sends a state-changing call and wraps the returned transaction
// hash into a [PendingWrite].
func (c *rpcClient) submit(ctx context.Context, method string, params []any) (PendingWrite, error) {
	log := c.logger.With().Str("func", "rpcClient.submit").Str("method", method).Logger()

	var txHash string
	if err := c.call(ctx, method, params, &txHash); err != nil {
		return nil, err
	}
	if txHash == "" {
		return nil, fmt.Errorf("%w: node returned empty transaction hash", ErrWriteFailed)
	}

	log.Debug().Str("tx_hash", txHash).Msg("ledger write submitted")

	return &pendingWrite{txHash: txHash, client: c}, nil
}

// call performs one JSON-RPC round trip and unmarshals the result into
// result (which may be nil when no result is expected).
func (c *rpcClient) call(ctx context.Context, method string, params []any, result any) error {
	req := rpcRequest{
		JSONRPC: "2.0",
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	}

	var rpcResp rpcResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&rpcResp).
		Post("")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnreachable, method, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%w: %s: http %d", ErrUnreachable, method, resp.StatusCode())
	}

	if rpcResp.Error != nil {
		return mapRPCError(rpcResp.Error)
	}

	if result != nil {
		if err := json.Unmarshal(rpcResp.Result, result); err != nil {
			return fmt.Errorf("%w: %s: malformed result: %v", ErrUnreachable, method, err)
		}
	}

	return nil
}
