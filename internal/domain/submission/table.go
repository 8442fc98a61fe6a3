package submission

import (
	"github.com/turtacn/gpcr-studio/pkg/errors"
	"github.com/turtacn/gpcr-studio/pkg/types/prediction"
)

// BuildTable combines identifiers and their score triples into an ordered
// result table.  It is a pure function: deterministic, no side effects, and
// byte-identical output for identical input.
//
// Per record, the predicted label is the tie-broken argmax of the triple
// (agonist first, then antagonist, then inactive) and the binary decision is
// 1 when the agonist score is greater than or equal to the threshold.
//
// The happy path never reaches this function with empty input — callers fail
// with ErrCodeNoInput before scoring — so an empty identifier sequence simply
// yields an empty table as a defensive default.  A length mismatch between
// identifiers and scores violates the scoring adapter contract and is
// reported as an internal error.
func BuildTable(smiles []string, scores []prediction.ScoreTriple, threshold float64) (*prediction.ResultTable, error) {
	if len(smiles) != len(scores) {
		return nil, errors.Internal("identifier and score counts diverge").
			WithDetail("scoring adapter must return exactly one triple per identifier")
	}

	records := make([]prediction.ResultRecord, len(smiles))
	for i, s := range smiles {
		triple := scores[i]
		decision := 0
		if triple.Agonist >= threshold {
			decision = 1
		}
		records[i] = prediction.ResultRecord{
			SMILES:         s,
			Scores:         triple,
			PredictedLabel: triple.ArgmaxLabel(),
			BinaryDecision: decision,
		}
	}

	return &prediction.ResultTable{
		Threshold: threshold,
		Records:   records,
	}, nil
}
