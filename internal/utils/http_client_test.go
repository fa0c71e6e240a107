package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_IndependentInstances(t *testing.T) {
	first := NewHTTPClient()
	second := NewHTTPClient()

	require.NotNil(t, first)
	require.NotNil(t, first.Client)
	assert.NotSame(t, first.Client, second.Client, "each client owns its own resty instance")
}

func TestHTTPClient_RoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"0x1"}`))
	}))
	defer srv.Close()

	client := NewHTTPClient()
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(`{"jsonrpc":"2.0","id":1,"method":"eth_chainId"}`).
		Post(srv.URL)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, string(resp.Body()), `"result":"0x1"`)
}
