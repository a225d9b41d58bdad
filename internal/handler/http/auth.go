package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-prompt-tracker/internal/logger"
	"github.com/MKhiriev/go-prompt-tracker/internal/utils"
	"github.com/MKhiriev/go-prompt-tracker/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "*Handler.register")
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, credentials)
	if err != nil {
		writeError(w, r, err, "*Handler.register")
		return
	}

	log.Debug().Str("func", "*Handler.register").Int64("id", registeredUser.UserID).Msg("user registered")

	utils.WriteJSON(w, models.RegisterResponse{
		Message:  "User registered successfully.",
		Username: registeredUser.Username,
		Role:     registeredUser.Role,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "*Handler.login")
		return
	}

	token, err := h.services.AuthService.Authenticate(ctx, credentials)
	if err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResult{
		Token:    token.SignedString,
		Username: token.Claims.Name,
		Role:     token.Claims.Role,
	}, http.StatusOK)
}
