package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rorado/colistrack/internal/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	if !models.IsProfileKind(kind) {
		respondError(w, http.StatusBadRequest, "unknown profile kind", nil)
		return
	}
	p, err := h.store.ReadProfile(kind)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to read profile", err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (h *Handler) putProfile(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	if !models.IsProfileKind(kind) {
		respondError(w, http.StatusBadRequest, "unknown profile kind", nil)
		return
	}
	var p models.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid profile payload", err)
		return
	}
	if err := p.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, "profile validation failed", err)
		return
	}
	if err := h.store.WriteProfile(kind, &p); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to save profile", err)
		return
	}
	respondJSON(w, http.StatusOK, &p)
}
