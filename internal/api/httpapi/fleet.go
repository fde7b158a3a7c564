package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/rorado/colistrack/internal/models"
)

func (h *Handler) getDrivers(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ReadDrivers()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to read drivers", err)
		return
	}
	respondJSON(w, http.StatusOK, records)
}

func (h *Handler) putDrivers(w http.ResponseWriter, r *http.Request) {
	var records []models.DriverRecord
	if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
		respondError(w, http.StatusBadRequest, "invalid drivers payload", err)
		return
	}
	if err := models.ValidateDrivers(records); err != nil {
		respondError(w, http.StatusBadRequest, "driver validation failed", err)
		return
	}
	if err := h.store.WriteDrivers(records); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to save drivers", err)
		return
	}
	respondJSON(w, http.StatusOK, records)
}

func (h *Handler) getVehicles(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ReadVehicles()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to read vehicles", err)
		return
	}
	respondJSON(w, http.StatusOK, records)
}

func (h *Handler) putVehicles(w http.ResponseWriter, r *http.Request) {
	var records []models.VehicleRecord
	if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
		respondError(w, http.StatusBadRequest, "invalid vehicles payload", err)
		return
	}
	if err := models.ValidateVehicles(records); err != nil {
		respondError(w, http.StatusBadRequest, "vehicle validation failed", err)
		return
	}
	if err := h.store.WriteVehicles(records); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to save vehicles", err)
		return
	}
	respondJSON(w, http.StatusOK, records)
}

func (h *Handler) getCustomers(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ReadCustomers()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to read customers", err)
		return
	}
	respondJSON(w, http.StatusOK, records)
}

func (h *Handler) putCustomers(w http.ResponseWriter, r *http.Request) {
	var records []models.CustomerRecord
	if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
		respondError(w, http.StatusBadRequest, "invalid customers payload", err)
		return
	}
	if err := models.ValidateCustomers(records); err != nil {
		respondError(w, http.StatusBadRequest, "customer validation failed", err)
		return
	}
	if err := h.store.WriteCustomers(records); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to save customers", err)
		return
	}
	respondJSON(w, http.StatusOK, records)
}
