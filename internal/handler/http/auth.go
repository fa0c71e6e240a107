package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/veridoc/veridoc/internal/app"
	"github.com/veridoc/veridoc/internal/logger"
	"github.com/veridoc/veridoc/internal/utils"
	"github.com/veridoc/veridoc/models"
)

func (h *Handler) requestOTPLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.OTPLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.RequestLoginCode(ctx, req.Email, req.Password); err != nil {
		log.Err(err).Str("func", "*Handler.requestOTPLogin").Msg("login code request rejected")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, map[string]string{ //nolint:errcheck
		"message": app.MsgLoginCodeSent,
	}, http.StatusOK)
}

func (h *Handler) verifyOTPLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.OTPVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	admin, token, err := h.services.AuthService.VerifyLoginCode(ctx, req.Email, req.Code)
	if err != nil {
		log.Err(err).Str("func", "*Handler.verifyOTPLogin").Msg("login code exchange rejected")
		writeError(w, err)
		return
	}

	log.Debug().Int64("admin_id", admin.AdminID).Msg("operator successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{ //nolint:errcheck
		Message:      app.MsgLoginSuccessful,
		Token:        token.SignedString,
		Name:         admin.Name,
		Role:         admin.Role,
		Organization: admin.Organization,
	}, http.StatusOK)
}
