package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	type verification struct {
		Verified bool   `json:"verified"`
		Status   string `json:"status"`
	}

	tests := []struct {
		name       string
		data       any
		statusCode int
		wantBody   string
	}{
		{
			name:       "struct payload",
			data:       verification{Verified: true, Status: "Active"},
			statusCode: http.StatusOK,
			wantBody:   `{"verified":true,"status":"Active"}`,
		},
		{
			name:       "error envelope with custom status",
			data:       map[string]string{"error": "hash not anchored"},
			statusCode: http.StatusNotFound,
			wantBody:   `{"error":"hash not anchored"}`,
		},
		{
			name:       "nil data",
			data:       nil,
			statusCode: http.StatusOK,
			wantBody:   "null",
		},
		{
			name:       "slice payload",
			data:       []string{"0xaaa", "0xbbb"},
			statusCode: http.StatusOK,
			wantBody:   `["0xaaa","0xbbb"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.statusCode)
			require.NoError(t, err)

			assert.Equal(t, tt.statusCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantBody, w.Body.String())
			assert.Equal(t, len(tt.wantBody), n)
		})
	}
}

func TestWriteJSON_UnserializableData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, json.Valid(w.Body.Bytes()))
}
