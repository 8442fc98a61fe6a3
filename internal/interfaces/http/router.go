// Package http wires the studio's HTTP surface: the route tree, the
// middleware chain, and the server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/turtacn/gpcr-studio/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/gpcr-studio/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/gpcr-studio/internal/interfaces/http/handlers"
	"github.com/turtacn/gpcr-studio/internal/interfaces/http/middleware"
)

// RouterConfig aggregates all handler and middleware dependencies required
// to construct the complete HTTP route tree.
type RouterConfig struct {
	// Handlers
	PredictionHandler *handlers.PredictionHandler
	StudioHandler     *handlers.StudioHandler
	HealthHandler     *handlers.HealthHandler

	// Infrastructure
	Logger           logging.Logger
	Metrics          *prometheus.StudioMetrics
	MetricsCollector prometheus.MetricsCollector

	// Middleware tuning; zero values select the defaults.
	CORS    *middleware.CORSConfig
	Logging *middleware.LoggingConfig
}

// NewRouter constructs the complete HTTP route tree from the given
// configuration.  It wires global middleware, public health endpoints, and
// the API v1 resource groups into a single http.Handler.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// --- Global middleware (applied to every request) ---
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	corsCfg := middleware.DefaultCORSConfig()
	if cfg.CORS != nil {
		corsCfg = *cfg.CORS
	}
	r.Use(middleware.CORS(corsCfg))

	if cfg.Logger != nil {
		logCfg := middleware.DefaultLoggingConfig()
		if cfg.Logging != nil {
			logCfg = *cfg.Logging
		}
		r.Use(middleware.RequestLogging(cfg.Logger, cfg.Metrics, logCfg))
	}

	// --- Public health endpoints ---
	if cfg.HealthHandler != nil {
		r.Get("/healthz", cfg.HealthHandler.Liveness)
		r.Get("/readyz", cfg.HealthHandler.Readiness)
	}

	// --- Metrics endpoint (scraped internally, no auth in this version) ---
	if cfg.MetricsCollector != nil {
		r.Handle("/metrics", cfg.MetricsCollector.Handler())
	}

	// --- API v1 ---
	r.Route("/api/v1", func(api chi.Router) {
		registerPredictionRoutes(api, cfg.PredictionHandler)
		registerStudioRoutes(api, cfg.StudioHandler)
	})

	return r
}

// registerPredictionRoutes mounts the submission pipeline under /predictions.
func registerPredictionRoutes(r chi.Router, h *handlers.PredictionHandler) {
	if h == nil {
		return
	}
	r.Route("/predictions", func(pr chi.Router) {
		pr.Post("/", h.Submit)
		pr.Post("/export/csv", h.ExportCSV)
		pr.Post("/export/archive", h.ExportArchive)
	})
}

// registerStudioRoutes mounts shell configuration endpoints under /studio.
func registerStudioRoutes(r chi.Router, h *handlers.StudioHandler) {
	if h == nil {
		return
	}
	r.Route("/studio", func(sr chi.Router) {
		sr.Get("/config", h.Config)
		sr.Get("/about", h.About)
	})
}
