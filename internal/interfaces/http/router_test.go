package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/gpcr-studio/internal/application/prediction"
	"github.com/turtacn/gpcr-studio/internal/config"
	"github.com/turtacn/gpcr-studio/internal/intelligence/activitynet"
	"github.com/turtacn/gpcr-studio/internal/interfaces/http/handlers"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := config.NewDefaultConfig()
	svc := prediction.NewService(
		activitynet.NewConstantScorer(nil),
		cfg.Scoring,
		nil, nil,
	)
	return NewRouter(RouterConfig{
		PredictionHandler: handlers.NewPredictionHandler(svc, cfg.Scoring.DefaultThreshold, cfg.Server.MaxBodySize, nil),
		StudioHandler:     handlers.NewStudioHandler(cfg.Studio, cfg.Scoring.DefaultThreshold),
		HealthHandler:     handlers.NewHealthHandler(cfg.Scoring),
	})
}

func TestRouterHealthEndpoints(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/healthz", "/readyz"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestRouterSubmitEndpoint(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/predictions",
		strings.NewReader(`{"smiles_text":"CCO","threshold":0.5}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterStudioConfig(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/studio/config", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		config.StudioConfig
		DefaultThreshold float64 `json:"default_threshold"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, config.DefaultStudioTitle, body.Title)
	assert.Equal(t, "#1B7F5D", body.Theme.RichEmerald)
	assert.Equal(t, config.DefaultThreshold, body.DefaultThreshold)
}

func TestRouterStudioAbout(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/studio/about", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Class A GPCR")
}

func TestRouterCORSPreflight(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/predictions", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouterUnknownRoute(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
