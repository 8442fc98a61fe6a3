package activitynet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/gpcr-studio/internal/config"
	"github.com/turtacn/gpcr-studio/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/gpcr-studio/pkg/types/prediction"
)

func TestConstantScorerTriple(t *testing.T) {
	s := NewConstantScorer(logging.NewNopLogger())

	scores, err := s.Score(context.Background(), []string{"CCO", "CCN", "not-even-smiles"})
	require.NoError(t, err)
	require.Len(t, scores, 3)

	want := prediction.ScoreTriple{Agonist: 0.55, Antagonist: 0.35, Inactive: 0.10}
	for _, triple := range scores {
		assert.Equal(t, want, triple)
	}
}

func TestConstantScorerOrderPreserving(t *testing.T) {
	s := NewConstantScorer(nil)
	scores, err := s.Score(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Len(t, scores, 2)
}

func TestConstantScorerCancelledContext(t *testing.T) {
	s := NewConstantScorer(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Score(ctx, []string{"CCO"})
	assert.Error(t, err)
}

func TestModelVersion(t *testing.T) {
	s := NewConstantScorer(nil)
	assert.Equal(t, "mock-constant-v1", s.ModelVersion())
}

func TestNewScorerSelectsMock(t *testing.T) {
	s, err := NewScorer(config.ScoringConfig{Adapter: "mock"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &ConstantScorer{}, s)
}

func TestNewScorerRejectsUnknown(t *testing.T) {
	_, err := NewScorer(config.ScoringConfig{Adapter: "triton"}, nil)
	assert.Error(t, err)
}
