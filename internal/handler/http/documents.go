package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/veridoc/veridoc/internal/app"
	"github.com/veridoc/veridoc/internal/logger"
	"github.com/veridoc/veridoc/internal/service"
	"github.com/veridoc/veridoc/internal/utils"
	"github.com/veridoc/veridoc/models"
)

// maxUploadSize caps the in-memory multipart buffer at 32 MiB.
const maxUploadSize = 32 << 20

// multipartFileField is the form field carrying the document bytes.
const multipartFileField = "document"

var pdfMagic = []byte("%PDF")

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	data, err := readDocumentFile(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("rejecting upload")
		writeError(w, err)
		return
	}

	validityDays, _ := strconv.ParseInt(r.FormValue("validityDays"), 10, 64)
	meta := models.UploadMetadata{
		DocumentType:  r.FormValue("documentType"),
		PrimaryName:   r.FormValue("primaryName"),
		UploadDate:    r.FormValue("uploadDate"),
		ValidityDays:  validityDays,
		ContactEmail:  r.FormValue("email"),
		ContactMobile: r.FormValue("mobile"),
	}

	if err = h.metaValidator.Validate(ctx, meta); err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("rejecting upload metadata")
		writeError(w, err)
		return
	}

	document, err := h.services.RegistryService.Issue(ctx, data, meta)
	if err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("issuance failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.UploadResponse{ //nolint:errcheck
		Message:      app.MsgDocumentStored,
		Hash:         document.Hash,
		TxHash:       document.TxHash,
		ValidityDays: document.ValidityDays,
	}, http.StatusOK)
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	data, err := readDocumentFile(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.verify").Msg("rejecting verification upload")
		writeError(w, err)
		return
	}

	resolved, err := h.services.RegistryService.Verify(ctx, data)
	if err != nil {
		log.Err(err).Str("func", "*Handler.verify").Msg("verification failed")
		writeError(w, err)
		return
	}

	verified := resolved.Status == models.StatusActive
	message := app.MsgDocumentVerified
	if !verified {
		message = app.MsgDocumentNotVerified
	}

	utils.WriteJSON(w, models.VerifyResponse{ //nolint:errcheck
		Verified: verified,
		Hash:     resolved.Hash,
		Message:  message,
	}, http.StatusOK)
}

// verifyByHash serves the QR deep link: the full resolved view for a
// known content hash, without uploading the document bytes again.
func (h *Handler) verifyByHash(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	hash := chi.URLParam(r, "hash")

	resolved, err := h.services.RegistryService.Resolve(ctx, hash)
	if err != nil {
		log.Err(err).Str("func", "*Handler.verifyByHash").Str("hash", hash).Msg("resolution failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, resolved, http.StatusOK) //nolint:errcheck
}

func (h *Handler) revoke(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RevokeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	receipt, err := h.services.RegistryService.Revoke(ctx, req.DocumentHash)
	if err != nil {
		log.Err(err).Str("func", "*Handler.revoke").Str("hash", req.DocumentHash).Msg("revocation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.RevokeResponse{ //nolint:errcheck
		Message:      app.MsgDocumentRevoked,
		DocumentHash: req.DocumentHash,
		TxHash:       receipt.TxHash,
		BlockNumber:  receipt.BlockNumber,
	}, http.StatusOK)
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter := historyFilter(r)

	documents, err := h.services.RegistryService.History(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.history").Msg("history listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.HistoryResponse{ //nolint:errcheck
		Count:     len(documents),
		Documents: documents,
	}, http.StatusOK)
}

func (h *Handler) dashboardStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	stats, err := h.services.RegistryService.DashboardStats(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.dashboardStats").Msg("stats aggregation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK) //nolint:errcheck
}

func (h *Handler) pauseContract(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.PauseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if req.Action != "pause" && req.Action != "unpause" {
		http.Error(w, app.MsgPauseActionRequired, http.StatusBadRequest)
		return
	}

	receipt, err := h.services.RegistryService.SetPaused(ctx, req.Action == "pause")
	if err != nil {
		log.Err(err).Str("func", "*Handler.pauseContract").Str("action", req.Action).Msg("pause toggle failed")
		writeError(w, err)
		return
	}

	message := app.MsgContractPaused
	if req.Action == "unpause" {
		message = app.MsgContractUnpaused
	}

	utils.WriteJSON(w, models.PauseResponse{ //nolint:errcheck
		Message:     message,
		TxHash:      receipt.TxHash,
		BlockNumber: receipt.BlockNumber,
	}, http.StatusOK)
}

func (h *Handler) contractStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	paused, err := h.services.RegistryService.ContractStatus(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.contractStatus").Msg("status check failed")
		writeError(w, err)
		return
	}

	message := app.MsgContractIsActive
	if paused {
		message = app.MsgContractIsPaused
	}

	utils.WriteJSON(w, models.ContractStatusResponse{ //nolint:errcheck
		Paused:  paused,
		Message: message,
	}, http.StatusOK)
}

// readDocumentFile extracts and validates the uploaded document bytes
// from the multipart form. Only PDF payloads are accepted; the check is a
// content sniff, not a trust of the client-supplied content type.
func readDocumentFile(r *http.Request) ([]byte, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, service.ErrInvalidDataProvided
	}

	file, _, err := r.FormFile(multipartFileField)
	if err != nil {
		return nil, fmt.Errorf("%w: no file uploaded", service.ErrInvalidDataProvided)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		return nil, service.ErrInvalidDataProvided
	}
	if len(data) > maxUploadSize {
		return nil, service.ErrInvalidDataProvided
	}

	if !bytes.HasPrefix(data, pdfMagic) {
		return nil, service.ErrInvalidDataProvided
	}

	return data, nil
}

// historyFilter builds the listing filter from query parameters.
// Unparseable values are ignored rather than rejected: the history view
// degrades to an unfiltered listing.
func historyFilter(r *http.Request) models.DocumentFilter {
	query := r.URL.Query()

	var filter models.DocumentFilter
	for _, status := range query["status"] {
		filter.Statuses = append(filter.Statuses, models.Status(status))
	}
	filter.DocumentType = query.Get("type")
	if limit, err := strconv.ParseUint(query.Get("limit"), 10, 64); err == nil {
		filter.Limit = limit
	}

	return filter
}
