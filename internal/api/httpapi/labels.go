package httpapi

import (
	"bytes"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rorado/colistrack/internal/cache/rediscache"
)

// Query params accepted as fallbacks when the shipment is missing a field
// (or the whole shipment is unknown to the store).
var labelFallbackParams = []string{
	"sender", "senderPhone", "recipient", "recipientPhone",
	"city", "address", "price", "comment", "product",
	"createdAt", "createdAtTime",
}

func labelFallbacks(r *http.Request) map[string]string {
	q := r.URL.Query()
	out := make(map[string]string, len(labelFallbackParams))
	for _, k := range labelFallbackParams {
		if v := q.Get(k); v != "" {
			out[k] = v
		}
	}
	return out
}

func (h *Handler) getLabel(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "trackingNumber")
	payload, err := h.labels.BuildLabel(r.Context(), number, labelFallbacks(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to build label", err)
		return
	}
	respondJSON(w, http.StatusOK, payload)
}

func (h *Handler) getLabelPDF(w http.ResponseWriter, r *http.Request) {
	if !h.allowLabelRender(r) {
		respondError(w, http.StatusTooManyRequests, "label rendering rate limit exceeded", nil)
		return
	}

	number := chi.URLParam(r, "trackingNumber")
	payload, err := h.labels.BuildLabel(r.Context(), number, labelFallbacks(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to build label", err)
		return
	}

	// Render to memory first so a drawing failure can still produce a
	// clean 500 instead of a truncated download.
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, payload); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to render label", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "etiquette-"+number+".pdf"))
	_, _ = w.Write(buf.Bytes())
}

// allowLabelRender applies the per-client rate limit to PDF rendering.
// Without a limiter (no redis configured) everything is allowed; limiter
// failures fail open.
func (h *Handler) allowLabelRender(r *http.Request) bool {
	if h.limiter == nil || h.labelPerMin <= 0 {
		return true
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	ok, _, err := h.limiter.Allow(r.Context(), rediscache.LabelRenderKey(host), h.labelPerMin, time.Minute)
	if err != nil {
		return true
	}
	return ok
}
