package http

import (
	"errors"
	"net/http"

	"github.com/veridoc/veridoc/internal/ledger"
	"github.com/veridoc/veridoc/internal/service"
	"github.com/veridoc/veridoc/internal/store"
	"github.com/veridoc/veridoc/internal/utils"
	"github.com/veridoc/veridoc/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrAlreadyRegistered:       http.StatusConflict,
	service.ErrNotRevocable:            http.StatusConflict,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrLoginCodeInvalid:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	ledger.ErrFactNotFound:        http.StatusNotFound,
	ledger.ErrAlreadyAnchored:     http.StatusConflict,
	ledger.ErrLedgerPaused:        http.StatusServiceUnavailable,
	ledger.ErrUnreachable:         http.StatusBadGateway,
	ledger.ErrConfirmationTimeout: http.StatusGatewayTimeout,
	ledger.ErrWriteFailed:         http.StatusBadGateway,
	ledger.ErrCoordinatorClosed:   http.StatusServiceUnavailable,

	store.ErrDocumentNotFound: http.StatusNotFound,
	store.ErrDocumentNotSaved: http.StatusInternalServerError,
	store.ErrAdminNotFound:    http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,

	utils.ErrEmptyDocument:        http.StatusBadRequest,
	validators.ErrInvalidMetadata: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse is the JSON error envelope shared by all endpoints.
type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps err to an HTTP status and writes the JSON envelope.
// Internal errors are masked with the generic status text so storage and
// ledger details never leak to callers.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(http.StatusInternalServerError)
	}

	utils.WriteJSON(w, errorResponse{Error: message}, status) //nolint:errcheck
}
