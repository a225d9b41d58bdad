package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-prompt-tracker/internal/logger"
	"github.com/MKhiriev/go-prompt-tracker/internal/utils"
	"github.com/MKhiriev/go-prompt-tracker/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listPrompts(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoClaimsInContext, "*Handler.listPrompts")
		return
	}

	prompts, err := h.services.PromptService.ListUserPrompts(r.Context(), claims.Name)
	if err != nil {
		writeError(w, r, err, "*Handler.listPrompts")
		return
	}
	if prompts == nil {
		prompts = []models.Prompt{}
	}

	utils.WriteJSON(w, prompts, http.StatusOK)
}

func (h *Handler) createPrompt(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoClaimsInContext, "*Handler.createPrompt")
		return
	}

	var prompt models.Prompt
	if err := json.NewDecoder(r.Body).Decode(&prompt); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "*Handler.createPrompt")
		return
	}

	created, err := h.services.PromptService.CreatePrompt(r.Context(), claims.Name, prompt)
	if err != nil {
		writeError(w, r, err, "*Handler.createPrompt")
		return
	}

	logger.FromRequest(r).Info().Str("func", "*Handler.createPrompt").
		Str("user", claims.Name).Int64("id", created.ID).Str("category", created.Category).
		Msg("prompt created")

	utils.WriteJSON(w, created, http.StatusCreated)
}

// createPromptsBatch accepts a JSON array of prompts and always answers 200
// once the batch itself is acceptable; item failures are reported per result.
func (h *Handler) createPromptsBatch(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoClaimsInContext, "*Handler.createPromptsBatch")
		return
	}

	var prompts []models.Prompt
	if err := json.NewDecoder(r.Body).Decode(&prompts); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "*Handler.createPromptsBatch")
		return
	}

	results, err := h.services.PromptService.CreatePromptsBatch(r.Context(), claims.Name, prompts)
	if err != nil {
		writeError(w, r, err, "*Handler.createPromptsBatch")
		return
	}

	utils.WriteJSON(w, models.BatchResponse{Results: results}, http.StatusOK)
}

func (h *Handler) deletePrompt(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidPromptID, err), "*Handler.deletePrompt")
		return
	}

	if err = h.services.PromptService.DeletePrompt(r.Context(), id); err != nil {
		writeError(w, r, err, "*Handler.deletePrompt")
		return
	}

	logger.FromRequest(r).Info().Str("func", "*Handler.deletePrompt").Int64("id", id).Msg("prompt deleted")
	w.WriteHeader(http.StatusNoContent)
}
