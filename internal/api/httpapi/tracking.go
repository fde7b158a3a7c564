package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) listTracking(w http.ResponseWriter, r *http.Request) {
	records, err := h.tracking.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to read tracking", err)
		return
	}
	respondJSON(w, http.StatusOK, records)
}

func (h *Handler) getTracking(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")
	rec, ok, err := h.tracking.GetByNumber(r.Context(), number)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to read tracking", err)
		return
	}
	if !ok {
		respondError(w, http.StatusNotFound, "tracking number not found", nil)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

// syncTracking re-projects the client tracking view from the current
// shipment set. The same projection runs automatically on every shipments
// replace; this endpoint exists for manual repair.
func (h *Handler) syncTracking(w http.ResponseWriter, r *http.Request) {
	records, err := h.shipments.SyncTracking(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to sync tracking", err)
		return
	}
	respondJSON(w, http.StatusOK, records)
}
