package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/rorado/colistrack/internal/labelpdf"
	"github.com/rorado/colistrack/internal/services/labels"
	"github.com/rorado/colistrack/internal/services/shipments"
	"github.com/rorado/colistrack/internal/services/tracking"
	"github.com/rorado/colistrack/internal/storage/filestore"
)

// Legacy English page paths kept alive as redirects to the French UI.
var legacyRedirects = map[string]string{
	"/signin":             "/connexion",
	"/admin/shipments":    "/admin/expeditions",
	"/admin/drivers":      "/admin/chauffeurs",
	"/admin/vehicles":     "/admin/vehicules",
	"/admin/customers":    "/admin/clients",
	"/client/tracking":    "/client/suivi",
	"/delivery/shipments": "/livreur/expeditions",
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (bool, int64, error)
}

type Handler struct {
	shipments *shipments.Service
	tracking  *tracking.Service
	labels    *labels.Service
	renderer  *labelpdf.Renderer
	store     *filestore.Storage

	limiter     RateLimiter // optional
	labelPerMin int64
	swaggerPath string
}

type Config struct {
	Shipments *shipments.Service
	Tracking  *tracking.Service
	Labels    *labels.Service
	Renderer  *labelpdf.Renderer
	Store     *filestore.Storage

	Limiter                 RateLimiter
	LabelRateLimitPerMinute int64
	SwaggerPath             string
}

func New(cfg Config) *Handler {
	return &Handler{
		shipments:   cfg.Shipments,
		tracking:    cfg.Tracking,
		labels:      cfg.Labels,
		renderer:    cfg.Renderer,
		store:       cfg.Store,
		limiter:     cfg.Limiter,
		labelPerMin: cfg.LabelRateLimitPerMinute,
		swaggerPath: cfg.SwaggerPath,
	}
}

func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	for from, to := range legacyRedirects {
		target := to
		r.Get(from, func(w http.ResponseWriter, req *http.Request) {
			http.Redirect(w, req, target, http.StatusMovedPermanently)
		})
	}

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	if h.swaggerPath != "" {
		r.Get("/swagger.json", func(w http.ResponseWriter, req *http.Request) {
			http.ServeFile(w, req, h.swaggerPath)
		})
		r.Get("/docs/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger.json"),
		))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/shipments", h.getShipments)
		r.Put("/shipments", h.putShipments)

		r.Get("/drivers", h.getDrivers)
		r.Put("/drivers", h.putDrivers)
		r.Get("/vehicles", h.getVehicles)
		r.Put("/vehicles", h.putVehicles)
		r.Get("/customers", h.getCustomers)
		r.Put("/customers", h.putCustomers)

		r.Get("/profiles/{kind}", h.getProfile)
		r.Put("/profiles/{kind}", h.putProfile)

		r.Get("/tracking", h.listTracking)
		r.Get("/tracking/{number}", h.getTracking)
		r.Post("/tracking/sync", h.syncTracking)
	})

	r.Get("/label/{trackingNumber}", h.getLabel)
	r.Get("/label/{trackingNumber}/pdf", h.getLabelPDF)

	return r
}
