package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/stock-keeper/internal/logger"
	"github.com/MKhiriev/stock-keeper/internal/service"
	"github.com/MKhiriev/stock-keeper/internal/utils"
	"github.com/MKhiriev/stock-keeper/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// A malformed body degrades to empty credentials and fails with the same
	// generic 401 as a wrong password, so login never reveals which part of
	// the request was bad.
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed to login")
	}

	user, err := h.services.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.Err(err).Msg("invalid credentials")
			writeError(w, service.ErrInvalidCredentials)
			return
		}

		log.Err(err).Msg("unexpected error occurred during user login")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", user.UserID).Str("username", user.Username).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{
		Message: msgLoginSuccess,
		Token:   token.SignedString,
	}, http.StatusOK)
}
