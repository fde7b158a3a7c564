package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/rorado/colistrack/internal/models"
)

func (h *Handler) getShipments(w http.ResponseWriter, r *http.Request) {
	records, err := h.shipments.ReadAll(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to read shipments", err)
		return
	}
	respondJSON(w, http.StatusOK, records)
}

func (h *Handler) putShipments(w http.ResponseWriter, r *http.Request) {
	var records []models.ShipmentRecord
	if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
		respondError(w, http.StatusBadRequest, "invalid shipments payload", err)
		return
	}
	if records == nil {
		respondError(w, http.StatusBadRequest, "invalid shipments payload", errors.New("expected a JSON array"))
		return
	}
	if err := models.ValidateShipments(records); err != nil {
		respondError(w, http.StatusBadRequest, "shipment validation failed", err)
		return
	}
	if err := h.shipments.ReplaceAll(r.Context(), records); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to save shipments", err)
		return
	}
	respondJSON(w, http.StatusOK, records)
}
