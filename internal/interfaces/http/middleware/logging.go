// Package middleware provides the HTTP middleware chain of the studio:
// request logging and CORS.  Everything composes as standard
// func(http.Handler) http.Handler so it slots into the chi router.
package middleware

import (
	"net/http"
	"strconv"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/turtacn/gpcr-studio/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/gpcr-studio/internal/infrastructure/monitoring/prometheus"
)

// LoggingConfig holds configuration for the request logging middleware.
type LoggingConfig struct {
	// SkipPaths are paths that should not be logged (probes, metrics scrape).
	SkipPaths []string

	// SlowThreshold is the duration above which a request is logged at WARN.
	SlowThreshold time.Duration
}

// DefaultLoggingConfig returns a sensible default logging configuration.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		SkipPaths:     []string{"/healthz", "/readyz", "/metrics"},
		SlowThreshold: 3 * time.Second,
	}
}

// wrappedResponseWriter captures the status code and bytes written.
type wrappedResponseWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int64
	wroteHeader  bool
}

func newWrappedResponseWriter(w http.ResponseWriter) *wrappedResponseWriter {
	return &wrappedResponseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default if WriteHeader is never called
	}
}

func (w *wrappedResponseWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.statusCode = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *wrappedResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytesWritten += int64(n)
	return n, err
}

// RequestLogging returns a middleware that logs one structured entry per
// request: method, path, status, duration, bytes, and the chi request ID.
// 5xx responses log at ERROR, 4xx and slow requests at WARN, everything else
// at INFO.  metrics may be nil when exposition is disabled.
func RequestLogging(logger logging.Logger, metrics *prometheus.StudioMetrics, cfg LoggingConfig) func(http.Handler) http.Handler {
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}
	log := logger.Named("http")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := skip[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			ww := newWrappedResponseWriter(w)
			next.ServeHTTP(ww, r)
			elapsed := time.Since(start)

			if metrics != nil {
				metrics.HTTPRequestsTotal.
					WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(ww.statusCode)).
					Inc()
			}

			fields := []logging.Field{
				logging.String("method", r.Method),
				logging.String("path", r.URL.Path),
				logging.Int("status", ww.statusCode),
				logging.Duration("duration", elapsed),
				logging.Int64("bytes", ww.bytesWritten),
				logging.String("request_id", chimw.GetReqID(r.Context())),
			}

			switch {
			case ww.statusCode >= 500:
				log.Error("request failed", fields...)
			case ww.statusCode >= 400:
				log.Warn("request rejected", fields...)
			case cfg.SlowThreshold > 0 && elapsed > cfg.SlowThreshold:
				log.Warn("slow request", fields...)
			default:
				log.Info("request served", fields...)
			}
		})
	}
}
