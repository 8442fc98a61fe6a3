// Package activitynet is the pluggable scoring boundary of the studio.  It
// stands in for the real GPCR functional-activity classifier: callers depend
// only on the Scorer interface, so a served model can replace the constant
// mock without touching the normalizer, table builder, or formatters.
package activitynet

import (
	"context"

	"github.com/turtacn/gpcr-studio/internal/config"
	"github.com/turtacn/gpcr-studio/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/gpcr-studio/pkg/errors"
	"github.com/turtacn/gpcr-studio/pkg/types/prediction"
)

// Scorer produces one score triple per identifier, in input order.
//
// The contract is all-or-nothing: either every identifier is scored or the
// call fails and the submission aborts.  Partially scored submissions are not
// a supported state anywhere in the pipeline.  Implementations backed by
// remote inference must honour ctx for timeout and cancellation and map their
// own failures onto ErrCodeScoring.
type Scorer interface {
	// Score returns exactly len(smiles) triples, one per input, order
	// preserved.  Callers guarantee a non-empty input sequence.
	Score(ctx context.Context, smiles []string) ([]prediction.ScoreTriple, error)

	// ModelVersion identifies the backing model for result provenance.
	ModelVersion() string
}

// Mock output constants.  These exact values are a compatibility contract:
// test fixtures and the UI-only preview mode depend on every ligand receiving
// this triple.
const (
	MockAgonistScore    = 0.55
	MockAntagonistScore = 0.35
	MockInactiveScore   = 0.10

	mockModelVersion = "mock-constant-v1"
)

// ConstantScorer is the UI-preview scoring backend: every identifier receives
// the same fixed triple regardless of content.  It performs no chemistry —
// SMILES syntax validation is deferred to a real classifier backend.
type ConstantScorer struct {
	logger logging.Logger
}

// NewConstantScorer constructs the mock scoring backend.
func NewConstantScorer(logger logging.Logger) *ConstantScorer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &ConstantScorer{logger: logger.Named("activitynet")}
}

// Score implements Scorer.  The mock has no failure modes of its own but
// still respects context cancellation so that callers behave identically
// against a real backend.
func (s *ConstantScorer) Score(ctx context.Context, smiles []string) ([]prediction.ScoreTriple, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, errors.CodeScoring, "activity scoring cancelled")
	}

	out := make([]prediction.ScoreTriple, len(smiles))
	for i := range out {
		out[i] = prediction.ScoreTriple{
			Agonist:    MockAgonistScore,
			Antagonist: MockAntagonistScore,
			Inactive:   MockInactiveScore,
		}
	}

	s.logger.Debug("scored submission with constant mock",
		logging.Int("ligands", len(smiles)),
		logging.String("model_version", mockModelVersion),
	)
	return out, nil
}

// ModelVersion implements Scorer.
func (s *ConstantScorer) ModelVersion() string { return mockModelVersion }

// NewScorer constructs the scoring backend selected by configuration.
// Only the "mock" adapter exists in this version; config validation rejects
// everything else before this point, so the fallthrough is defensive.
func NewScorer(cfg config.ScoringConfig, logger logging.Logger) (Scorer, error) {
	switch cfg.Adapter {
	case "mock", "":
		return NewConstantScorer(logger), nil
	default:
		return nil, errors.New(errors.CodeUnavailable, "unknown scoring adapter").
			WithDetail("adapter: " + cfg.Adapter)
	}
}
