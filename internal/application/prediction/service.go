// Package prediction provides the application-level service for the
// submission pipeline.  It is the single entry point handlers and CLI
// commands call: normalize → score → tabulate, plus the two export
// serializers over the resulting table.
package prediction

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/turtacn/gpcr-studio/internal/config"
	"github.com/turtacn/gpcr-studio/internal/domain/submission"
	"github.com/turtacn/gpcr-studio/internal/export"
	"github.com/turtacn/gpcr-studio/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/gpcr-studio/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/gpcr-studio/internal/intelligence/activitynet"
	"github.com/turtacn/gpcr-studio/pkg/errors"
	predtypes "github.com/turtacn/gpcr-studio/pkg/types/prediction"
)

// Service defines the interface for prediction submissions.
type Service interface {
	// Submit runs the full pipeline for one submission and returns its
	// result table.  All failures abort the whole submission; a partially
	// scored table is never returned.
	Submit(ctx context.Context, input *SubmitInput) (*predtypes.ResultTable, error)

	// ExportCSV serializes a result table as the flat CSV artifact.
	ExportCSV(table *predtypes.ResultTable) ([]byte, error)

	// ExportArchive serializes a result table as the per-ligand ZIP artifact.
	ExportArchive(table *predtypes.ResultTable) ([]byte, error)
}

// SubmitInput carries one submission's raw shell input.
type SubmitInput struct {
	// Text is the free-text channel: one SMILES string per line.
	Text string

	// CSV is the uploaded tabular channel; wins over Text when it yields
	// identifiers.  Nil or empty means no upload.
	CSV []byte

	// Threshold converts the agonist score into the binary decision.
	// Must lie in [0, 1].
	Threshold float64
}

// serviceImpl implements the Service interface.
type serviceImpl struct {
	scorer  activitynet.Scorer
	cfg     config.ScoringConfig
	logger  logging.Logger
	metrics *prometheus.StudioMetrics
}

// NewService creates the prediction application service.  metrics may be nil
// when metric exposition is disabled.
func NewService(scorer activitynet.Scorer, cfg config.ScoringConfig, logger logging.Logger, metrics *prometheus.StudioMetrics) Service {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &serviceImpl{
		scorer:  scorer,
		cfg:     cfg,
		logger:  logger.Named("prediction"),
		metrics: metrics,
	}
}

func (s *serviceImpl) Submit(ctx context.Context, input *SubmitInput) (*predtypes.ResultTable, error) {
	start := time.Now()
	table, source, err := s.submit(ctx, input)
	s.observeSubmission(source, table, err, time.Since(start))
	return table, err
}

func (s *serviceImpl) submit(ctx context.Context, input *SubmitInput) (*predtypes.ResultTable, string, error) {
	if !predtypes.ValidateThreshold(input.Threshold) {
		return nil, "", errors.New(errors.CodeThreshold, "threshold must be between 0.0 and 1.0").
			WithDetail("got " + strconv.FormatFloat(input.Threshold, 'g', -1, 64))
	}

	smiles, err := submission.Normalize(input.Text, input.CSV)
	if err != nil {
		return nil, "", err
	}
	source := "text"
	if len(input.CSV) > 0 {
		source = "csv"
	}

	// The "at least one identifier" precondition belongs here, not in the
	// normalizer: an empty sequence must fail before scoring is invoked.
	if len(smiles) == 0 {
		return nil, source, errors.New(errors.CodeNoInput, "provide at least one SMILES string before predicting")
	}

	scoreCtx := ctx
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		scoreCtx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	scores, err := s.scorer.Score(scoreCtx, smiles)
	if err != nil {
		return nil, source, errors.Wrap(err, errors.CodeScoring, "activity scoring failed")
	}

	table, err := submission.BuildTable(smiles, scores, input.Threshold)
	if err != nil {
		return nil, source, err
	}
	table.SubmissionID = uuid.NewString()
	table.ModelVersion = s.scorer.ModelVersion()

	s.logger.Info("submission scored",
		logging.String("submission_id", table.SubmissionID),
		logging.String("source", source),
		logging.Int("ligands", table.Len()),
		logging.Float64("threshold", input.Threshold),
		logging.String("model_version", table.ModelVersion),
	)
	return table, source, nil
}

func (s *serviceImpl) ExportCSV(table *predtypes.ResultTable) ([]byte, error) {
	blob, err := export.WriteCSV(table)
	if err != nil {
		return nil, err
	}
	s.observeExport("csv", len(blob))
	return blob, nil
}

func (s *serviceImpl) ExportArchive(table *predtypes.ResultTable) ([]byte, error) {
	blob, err := export.WriteArchive(table)
	if err != nil {
		return nil, err
	}
	s.observeExport("archive", len(blob))
	return blob, nil
}

func (s *serviceImpl) observeSubmission(source string, table *predtypes.ResultTable, err error, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = errors.GetCode(err).String()
	}
	s.metrics.SubmissionsTotal.WithLabelValues(outcome).Inc()
	s.metrics.SubmissionDuration.WithLabelValues().Observe(elapsed.Seconds())
	if err == nil && source != "" {
		s.metrics.SubmissionLigands.WithLabelValues(source).Observe(float64(table.Len()))
	}
}

func (s *serviceImpl) observeExport(format string, size int) {
	if s.metrics == nil {
		return
	}
	s.metrics.ExportBytes.WithLabelValues(format).Observe(float64(size))
}
