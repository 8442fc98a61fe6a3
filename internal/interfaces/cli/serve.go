package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/turtacn/gpcr-studio/internal/application/prediction"
	"github.com/turtacn/gpcr-studio/internal/config"
	"github.com/turtacn/gpcr-studio/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/gpcr-studio/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/gpcr-studio/internal/intelligence/activitynet"
	studiohttp "github.com/turtacn/gpcr-studio/internal/interfaces/http"
	"github.com/turtacn/gpcr-studio/internal/interfaces/http/handlers"
)

// newServeCmd creates the serve command: start the studio HTTP API and block
// until interrupted.
func newServeCmd(rootOpts *RootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the studio HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rootOpts)
			if err != nil {
				return fmt.Errorf("config initialization failed: %w", err)
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}

			logger, err := logging.NewLogger(logging.LogConfig(cfg.Log))
			if err != nil {
				return fmt.Errorf("logger initialization failed: %w", err)
			}
			logging.SetDefault(logger)

			return runServer(cmd.Context(), cfg, logger)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", config.DefaultServerPort, "HTTP listen port (overrides config)")
	return cmd
}

// runServer wires the full dependency graph and serves until ctx is cancelled
// or an interrupt arrives.
func runServer(ctx context.Context, cfg *config.Config, logger logging.Logger) error {
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
			return fmt.Errorf("metrics initialization failed: %w", err)
		}
		metrics = prometheus.NewStudioMetrics(collector)
	}

	scorer, err := activitynet.NewScorer(cfg.Scoring, logger)
	if err != nil {
		return err
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
	server := studiohttp.NewServer(cfg.Server, router, logger)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	stop()
	return server.Stop(context.Background())
}
