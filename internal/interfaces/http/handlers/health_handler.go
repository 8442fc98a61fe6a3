package handlers

import (
	"net/http"

	"github.com/turtacn/gpcr-studio/internal/config"
)

// HealthHandler serves liveness and readiness probes.  The studio has no
// external backends in mock mode, so readiness reduces to "process is up";
// the handler still reports the scoring adapter so that probes can observe
// which backend is wired.
type HealthHandler struct {
	adapter string
}

// NewHealthHandler constructs the handler.
func NewHealthHandler(cfg config.ScoringConfig) *HealthHandler {
	return &HealthHandler{adapter: cfg.Adapter}
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Adapter string `json:"scoring_adapter"`
}

// Liveness handles GET /healthz.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Version: config.Version,
		Adapter: h.adapter,
	})
}

// Readiness handles GET /readyz.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	h.Liveness(w, r)
}
