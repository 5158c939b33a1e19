package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campaign-dash/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the dashboard use case, a logger for structured logging and the
// default table page size. Routes are registered on a chi.Router.
type Handler struct {
	svc      port.DashboardUseCase
	logger   *slog.Logger
	pageSize int
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. pageSize is the
// table page size used when a request does not set page_size.
func NewHandler(svc port.DashboardUseCase, logger *slog.Logger, pageSize int) *Handler {
	h := &Handler{svc: svc, logger: logger, pageSize: pageSize}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(instrument)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/export", h.handleExport)
		r.Get("/dashboard", h.handleDashboard)
		r.Post("/dashboard/refresh", h.handleRefresh)
		r.Get("/preferences/{owner}", h.handleGetPreferences)
		r.Post("/preferences/{owner}/accent/next", h.handleNextAccent)
		r.Put("/preferences/{owner}/theme", h.handleSetTheme)
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; headers are already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
