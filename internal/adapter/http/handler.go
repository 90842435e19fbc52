package httpadapter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"control-ads/internal/config/configs"
	"control-ads/internal/core/port"
	"control-ads/internal/metrics"
)

// Services bundles the use cases served over HTTP.
type Services struct {
	Projects  port.ProjectUseCase
	Campaigns port.CampaignUseCase
	Contents  port.ContentUseCase
	Analytics port.AnalyticsUseCase
}

// Pinger reports whether the data store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
type Handler struct {
	svc     Services
	store   Pinger
	metrics *metrics.Metrics
	logger  *slog.Logger
	router  chi.Router
}

// NewHandler creates a handler with all routes and middleware configured.
// store may be nil, in which case /healthz only reports liveness.
func NewHandler(svc Services, cfg configs.HTTP, store Pinger, m *metrics.Metrics, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, store: store, metrics: m, logger: logger}
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(h.instrument)
	// cors allows every origin when the list is empty.
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders: []string{"X-Request-Id"},
			MaxAge:         300,
		}))
	}

	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimit > 0 {
			r.Use(httprate.LimitByIP(cfg.RateLimit, cfg.RateWindow))
		}

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", h.handleListProjects)
			r.Post("/", h.handleCreateProject)
			r.Get("/{id}", h.handleGetProject)
			r.Put("/{id}", h.handleUpdateProject)
			r.Delete("/{id}", h.handleDeleteProject)
		})

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleListCampaigns)
			r.Post("/", h.handleCreateCampaign)
			r.Get("/{id}", h.handleGetCampaign)
			r.Put("/{id}", h.handleUpdateCampaign)
			r.Delete("/{id}", h.handleDeleteCampaign)
			r.Get("/{id}/contents", h.handleListCampaignContents)
			r.Post("/{id}/contents", h.handleAttachContent)
			r.Delete("/{id}/contents/{contentID}", h.handleDetachContent)
		})

		r.Route("/contents", func(r chi.Router) {
			r.Get("/", h.handleListContents)
			r.Post("/", h.handleCreateContent)
			r.Get("/best-creatives", h.handleBestCreatives)
			r.Get("/{id}", h.handleGetContent)
			r.Put("/{id}", h.handleUpdateContent)
			r.Delete("/{id}", h.handleDeleteContent)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Post("/suggestions", h.handleSuggestions)
			r.Get("/projects/{id}/metrics", h.handleProjectMetrics)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.store != nil {
		if err := h.store.Ping(r.Context()); err != nil {
			h.logger.Error("health check failed", slog.Any("error", err))
			writeJSON(w, http.StatusServiceUnavailable, envelope{Error: err.Error(), Message: "data store unreachable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "ok"})
}
