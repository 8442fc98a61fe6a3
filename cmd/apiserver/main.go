// API server entry point for GPCR Activity Studio.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/turtacn/gpcr-studio/internal/application/prediction"
	"github.com/turtacn/gpcr-studio/internal/config"
	"github.com/turtacn/gpcr-studio/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/gpcr-studio/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/gpcr-studio/internal/intelligence/activitynet"
	studiohttp "github.com/turtacn/gpcr-studio/internal/interfaces/http"
	"github.com/turtacn/gpcr-studio/internal/interfaces/http/handlers"
)

const defaultConfigPath = "configs/config.yaml"

// version is injected via ldflags at build time.
var version = "dev"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to configuration file")
	httpPort := flag.Int("port", 0, "HTTP server port (overrides config)")
	flag.Parse()

	if version != "" {
		config.Version = version
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: using default configuration: %v\n", err)
		cfg = config.NewDefaultConfig()
	}
	if *httpPort > 0 {
		cfg.Server.Port = *httpPort
	}

	logger, err := logging.NewLogger(logging.LogConfig(cfg.Log))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logging.SetDefault(logger)

	logger.Info("starting GPCR Activity Studio API server",
		logging.String("version", config.Version),
		logging.Int("port", cfg.Server.Port),
		logging.String("scoring_adapter", cfg.Scoring.Adapter),
	)

	server, err := buildServer(cfg, logger)
	if err != nil {
		logger.Fatal("failed to build server", logging.Err(err))
	}

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("server failed", logging.Err(err))
		}
		return
	case sig := <-quit:
		logger.Info("received shutdown signal", logging.String("signal", sig.String()))
	}

	if err := server.Stop(context.Background()); err != nil {
		logger.Error("shutdown error", logging.Err(err))
		os.Exit(1)
	}
}

// loadConfig loads configuration from the given path, falling back to the
// environment when the file does not exist.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); err != nil {
		return config.LoadFromEnv()
	}
	return config.Load(path)
}

// buildServer wires the full dependency graph: metrics, scorer, application
// service, handlers, router, and the HTTP server.
func buildServer(cfg *config.Config, logger logging.Logger) (*studiohttp.Server, error) {
	var (
		metrics   *prometheus.StudioMetrics
		collector prometheus.MetricsCollector
	)
	if cfg.Metrics.Enabled {
		var err error
		collector, err = prometheus.NewMetricsCollector(prometheus.CollectorConfig{
			Namespace:            cfg.Metrics.Namespace,
			EnableProcessMetrics: true,
			EnableGoMetrics:      true,
		})
		if err != nil {
			return nil, fmt.Errorf("metrics initialization failed: %w", err)
		}
		metrics = prometheus.NewStudioMetrics(collector)
	}

	scorer, err := activitynet.NewScorer(cfg.Scoring, logger)
	if err != nil {
		return nil, err
	}
	svc := prediction.NewService(scorer, cfg.Scoring, logger, metrics)

	router := studiohttp.NewRouter(studiohttp.RouterConfig{
		PredictionHandler: handlers.NewPredictionHandler(svc, cfg.Scoring.DefaultThreshold, cfg.Server.MaxBodySize, logger),
		StudioHandler:     handlers.NewStudioHandler(cfg.Studio, cfg.Scoring.DefaultThreshold),
		HealthHandler:     handlers.NewHealthHandler(cfg.Scoring),
		Logger:            logger,
		Metrics:           metrics,
		MetricsCollector:  collector,
	})
	return studiohttp.NewServer(cfg.Server, router, logger), nil
}
