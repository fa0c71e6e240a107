package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridoc/veridoc/internal/ledger"
	"github.com/veridoc/veridoc/internal/logger"
	"github.com/veridoc/veridoc/internal/service"
	"github.com/veridoc/veridoc/models"
)

// ─────────────────────────────────────────────
// Mock: service.RegistryService
// ─────────────────────────────────────────────

type mockRegistryService struct {
	issueFn          func(ctx context.Context, data []byte, meta models.UploadMetadata) (models.Document, error)
	verifyFn         func(ctx context.Context, data []byte) (models.ResolvedDocument, error)
	resolveFn        func(ctx context.Context, hash string) (models.ResolvedDocument, error)
	revokeFn         func(ctx context.Context, hash string) (models.LedgerReceipt, error)
	historyFn        func(ctx context.Context, filter models.DocumentFilter) ([]models.ResolvedDocument, error)
	dashboardFn      func(ctx context.Context) (models.DashboardStats, error)
	reconcileFn      func(ctx context.Context) (int, error)
	setPausedFn      func(ctx context.Context, paused bool) (models.LedgerReceipt, error)
	contractStatusFn func(ctx context.Context) (bool, error)
}

func (m *mockRegistryService) Issue(ctx context.Context, data []byte, meta models.UploadMetadata) (models.Document, error) {
	return m.issueFn(ctx, data, meta)
}

func (m *mockRegistryService) Verify(ctx context.Context, data []byte) (models.ResolvedDocument, error) {
	return m.verifyFn(ctx, data)
}

func (m *mockRegistryService) Resolve(ctx context.Context, hash string) (models.ResolvedDocument, error) {
	return m.resolveFn(ctx, hash)
}

func (m *mockRegistryService) Revoke(ctx context.Context, hash string) (models.LedgerReceipt, error) {
	return m.revokeFn(ctx, hash)
}

func (m *mockRegistryService) History(ctx context.Context, filter models.DocumentFilter) ([]models.ResolvedDocument, error) {
	return m.historyFn(ctx, filter)
}

func (m *mockRegistryService) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	return m.dashboardFn(ctx)
}

func (m *mockRegistryService) ReconcileAll(ctx context.Context) (int, error) {
	return m.reconcileFn(ctx)
}

func (m *mockRegistryService) SetPaused(ctx context.Context, paused bool) (models.LedgerReceipt, error) {
	return m.setPausedFn(ctx, paused)
}

func (m *mockRegistryService) ContractStatus(ctx context.Context) (bool, error) {
	return m.contractStatusFn(ctx)
}

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	bootstrapFn   func(ctx context.Context, admin models.Admin, password string) error
	requestCodeFn func(ctx context.Context, email, password string) error
	verifyCodeFn  func(ctx context.Context, email, code string) (models.Admin, models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) BootstrapAdmin(ctx context.Context, admin models.Admin, password string) error {
	if m.bootstrapFn != nil {
		return m.bootstrapFn(ctx, admin, password)
	}
	return nil
}

func (m *mockAuthService) RequestLoginCode(ctx context.Context, email, password string) error {
	return m.requestCodeFn(ctx, email, password)
}

func (m *mockAuthService) VerifyLoginCode(ctx context.Context, email, code string) (models.Admin, models.Token, error) {
	return m.verifyCodeFn(ctx, email, code)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

// ─────────────────────────────────────────────

func newTestRouter(registry *mockRegistryService, auth *mockAuthService) http.Handler {
	if auth == nil {
		auth = &mockAuthService{}
	}
	h := NewHandler(&service.Services{
		RegistryService: registry,
		AuthService:     auth,
	}, logger.Nop())
	return h.Init()
}

// allowAuth returns an auth mock that accepts any bearer token as
// operator 7.
func allowAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(context.Context, string) (models.Token, error) {
			return models.Token{AdminID: 7}, nil
		},
	}
}

func multipartPDF(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile(multipartFileField, "diploma.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.7 test document bytes"))
	require.NoError(t, err)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func validUploadFields() map[string]string {
	return map[string]string{
		"documentType": "diploma",
		"primaryName":  "Jordan Woods",
		"uploadDate":   "2026-01-15",
		"validityDays": "365",
	}
}

func TestUpload_Success(t *testing.T) {
	registry := &mockRegistryService{
		issueFn: func(_ context.Context, data []byte, meta models.UploadMetadata) (models.Document, error) {
			assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
			assert.Equal(t, "diploma", meta.DocumentType)
			assert.Equal(t, int64(365), meta.ValidityDays)
			return models.Document{
				Hash:         "0xabc",
				TxHash:       "0xtx1",
				ValidityDays: 365,
			}, nil
		},
	}

	router := newTestRouter(registry, allowAuth())

	body, contentType := multipartPDF(t, validUploadFields())

	req := httptest.NewRequest(http.MethodPost, "/api/documents/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "0xabc", resp.Hash)
	assert.Equal(t, "0xtx1", resp.TxHash)
	assert.Equal(t, int64(365), resp.ValidityDays)
}

func TestUpload_RequiresAuth(t *testing.T) {
	router := newTestRouter(&mockRegistryService{}, nil)

	body, contentType := multipartPDF(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/documents/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpload_RejectsNonPDF(t *testing.T) {
	router := newTestRouter(&mockRegistryService{}, allowAuth())

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(multipartFileField, "notes.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("plain text, not a pdf"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/documents/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpload_AlreadyRegistered(t *testing.T) {
	registry := &mockRegistryService{
		issueFn: func(context.Context, []byte, models.UploadMetadata) (models.Document, error) {
			return models.Document{}, service.ErrAlreadyRegistered
		},
	}
	router := newTestRouter(registry, allowAuth())

	body, contentType := multipartPDF(t, validUploadFields())
	req := httptest.NewRequest(http.MethodPost, "/api/documents/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUpload_RejectsInvalidMetadata(t *testing.T) {
	router := newTestRouter(&mockRegistryService{}, allowAuth())

	fields := validUploadFields()
	fields["uploadDate"] = "15.01.2026"

	body, contentType := multipartPDF(t, fields)
	req := httptest.NewRequest(http.MethodPost, "/api/documents/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerify_PublicRoute(t *testing.T) {
	registry := &mockRegistryService{
		verifyFn: func(context.Context, []byte) (models.ResolvedDocument, error) {
			return models.ResolvedDocument{Hash: "0xabc", Status: models.StatusActive}, nil
		},
	}
	router := newTestRouter(registry, nil)

	body, contentType := multipartPDF(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/documents/verify", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.VerifyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Verified)
	assert.Equal(t, "0xabc", resp.Hash)
}

func TestVerify_RevokedIsNotVerified(t *testing.T) {
	registry := &mockRegistryService{
		verifyFn: func(context.Context, []byte) (models.ResolvedDocument, error) {
			return models.ResolvedDocument{Hash: "0xabc", Status: models.StatusRevoked}, nil
		},
	}
	router := newTestRouter(registry, nil)

	body, contentType := multipartPDF(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/documents/verify", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	var resp models.VerifyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Verified)
}

func TestVerifyByHash(t *testing.T) {
	registry := &mockRegistryService{
		resolveFn: func(_ context.Context, hash string) (models.ResolvedDocument, error) {
			assert.Equal(t, "0xabc", hash)
			return models.ResolvedDocument{
				Hash:        "0xabc",
				Status:      models.StatusActive,
				IssuerName:  "Registry Org",
				HasMetadata: true,
			}, nil
		},
	}
	router := newTestRouter(registry, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/documents/verify/0xabc", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resolved models.ResolvedDocument
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resolved))
	assert.Equal(t, models.StatusActive, resolved.Status)
	assert.Equal(t, "Registry Org", resolved.IssuerName)
}

func TestRevoke(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		registry := &mockRegistryService{
			revokeFn: func(_ context.Context, hash string) (models.LedgerReceipt, error) {
				assert.Equal(t, "0xabc", hash)
				return models.LedgerReceipt{TxHash: "0xrevoke", BlockNumber: 42}, nil
			},
		}
		router := newTestRouter(registry, allowAuth())

		req := httptest.NewRequest(http.MethodPost, "/api/documents/revoke",
			strings.NewReader(`{"document_hash":"0xabc"}`))
		req.Header.Set("Authorization", "Bearer token")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.RevokeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "0xrevoke", resp.TxHash)
		assert.Equal(t, int64(42), resp.BlockNumber)
	})

	t.Run("not revocable maps to conflict", func(t *testing.T) {
		registry := &mockRegistryService{
			revokeFn: func(context.Context, string) (models.LedgerReceipt, error) {
				return models.LedgerReceipt{}, fmt.Errorf("%w: already revoked", service.ErrNotRevocable)
			},
		}
		router := newTestRouter(registry, allowAuth())

		req := httptest.NewRequest(http.MethodPost, "/api/documents/revoke",
			strings.NewReader(`{"document_hash":"0xabc"}`))
		req.Header.Set("Authorization", "Bearer token")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestHistory_ForwardsFilter(t *testing.T) {
	registry := &mockRegistryService{
		historyFn: func(_ context.Context, filter models.DocumentFilter) ([]models.ResolvedDocument, error) {
			assert.Equal(t, []models.Status{models.StatusActive, models.StatusRevoked}, filter.Statuses)
			assert.Equal(t, "diploma", filter.DocumentType)
			assert.Equal(t, uint64(25), filter.Limit)
			return []models.ResolvedDocument{{Hash: "0xabc"}}, nil
		},
	}
	router := newTestRouter(registry, allowAuth())

	req := httptest.NewRequest(http.MethodGet,
		"/api/documents/history?status=Active&status=Revoked&type=diploma&limit=25", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.HistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
}

func TestPauseContract(t *testing.T) {
	t.Run("pause", func(t *testing.T) {
		registry := &mockRegistryService{
			setPausedFn: func(_ context.Context, paused bool) (models.LedgerReceipt, error) {
				assert.True(t, paused)
				return models.LedgerReceipt{TxHash: "0xpause", BlockNumber: 7}, nil
			},
		}
		router := newTestRouter(registry, allowAuth())

		req := httptest.NewRequest(http.MethodPost, "/api/documents/pause-contract",
			strings.NewReader(`{"action":"pause"}`))
		req.Header.Set("Authorization", "Bearer token")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "paused successfully")
	})

	t.Run("invalid action", func(t *testing.T) {
		router := newTestRouter(&mockRegistryService{}, allowAuth())

		req := httptest.NewRequest(http.MethodPost, "/api/documents/pause-contract",
			strings.NewReader(`{"action":"halt"}`))
		req.Header.Set("Authorization", "Bearer token")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestContractStatus(t *testing.T) {
	registry := &mockRegistryService{
		contractStatusFn: func(context.Context) (bool, error) { return true, nil },
	}
	router := newTestRouter(registry, allowAuth())

	req := httptest.NewRequest(http.MethodGet, "/api/documents/contract-status", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ContractStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Paused)
}

func TestRequestOTPLogin_WrongCredentials(t *testing.T) {
	auth := &mockAuthService{
		requestCodeFn: func(context.Context, string, string) error {
			return service.ErrWrongCredentials
		},
	}
	router := newTestRouter(&mockRegistryService{}, auth)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/request-otp-login",
		strings.NewReader(`{"email":"ops@example.org","password":"wrong"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyOTPLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		verifyCodeFn: func(_ context.Context, email, code string) (models.Admin, models.Token, error) {
			assert.Equal(t, "ops@example.org", email)
			assert.Equal(t, "123456", code)
			return models.Admin{Name: "Ops", Role: "issuer", Organization: "Registry Org"},
				models.Token{SignedString: "signed.jwt.token"}, nil
		},
	}
	router := newTestRouter(&mockRegistryService{}, auth)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/verify-otp-login",
		strings.NewReader(`{"email":"ops@example.org","code":"123456"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed.jwt.token", rec.Header().Get("Authorization"))

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.Token)
	assert.Equal(t, "Ops", resp.Name)
}

func TestUnsupportedMethodHidesRoute(t *testing.T) {
	router := newTestRouter(&mockRegistryService{}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/documents/verify", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTraceIDHeaderIsEchoed(t *testing.T) {
	registry := &mockRegistryService{
		contractStatusFn: func(context.Context) (bool, error) { return false, nil },
	}
	router := newTestRouter(registry, allowAuth())

	req := httptest.NewRequest(http.MethodGet, "/api/documents/contract-status", nil)
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrInvalidDataProvided, http.StatusBadRequest},
		{service.ErrAlreadyRegistered, http.StatusConflict},
		{ledger.ErrLedgerPaused, http.StatusServiceUnavailable},
		{ledger.ErrUnreachable, http.StatusBadGateway},
		{ledger.ErrConfirmationTimeout, http.StatusGatewayTimeout},
		{fmt.Errorf("wrapped: %w", ledger.ErrFactNotFound), http.StatusNotFound},
		{fmt.Errorf("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFromError(tt.err), "error: %v", tt.err)
	}
}
