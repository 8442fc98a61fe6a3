// Package prediction defines the activity-prediction Data Transfer Objects
// shared across every layer of GPCR Activity Studio.  No pipeline logic lives
// here — only plain data types that are safe to import from any layer without
// creating circular dependencies.
package prediction

// ─────────────────────────────────────────────────────────────────────────────
// Label — predicted functional activity class
// ─────────────────────────────────────────────────────────────────────────────

// Label is the predicted functional activity class of a ligand against the
// target receptor.
type Label string

const (
	// LabelAgonist marks a ligand predicted to activate the receptor.
	LabelAgonist Label = "agonist"

	// LabelAntagonist marks a ligand predicted to block the receptor.
	LabelAntagonist Label = "antagonist"

	// LabelInactive marks a ligand predicted to have no functional activity.
	LabelInactive Label = "inactive"
)

// ─────────────────────────────────────────────────────────────────────────────
// ScoreTriple — per-ligand class probabilities
// ─────────────────────────────────────────────────────────────────────────────

// ScoreTriple holds the three class probabilities produced by the scoring
// adapter for a single ligand.  The values are comparable for argmax but are
// not required to sum to 1; no normalization is enforced anywhere in the
// pipeline.
type ScoreTriple struct {
	Agonist    float64 `json:"p_agonist"`
	Antagonist float64 `json:"p_antagonist"`
	Inactive   float64 `json:"p_inactive"`
}

// ArgmaxLabel returns the Label with the highest score.  Exact ties are broken
// by a fixed priority order: agonist, then antagonist, then inactive — the
// first-listed class wins, matching the column order of the model output.
func (s ScoreTriple) ArgmaxLabel() Label {
	best, label := s.Agonist, LabelAgonist
	if s.Antagonist > best {
		best, label = s.Antagonist, LabelAntagonist
	}
	if s.Inactive > best {
		label = LabelInactive
	}
	return label
}

// ─────────────────────────────────────────────────────────────────────────────
// ResultRecord / ResultTable — tabulated submission output
// ─────────────────────────────────────────────────────────────────────────────

// ResultRecord is one row of a submission's result table: the submitted SMILES
// string, its score triple, the argmax label, and the binary agonist decision
// derived from the submission threshold (1 when p_agonist >= threshold).
type ResultRecord struct {
	SMILES         string      `json:"smiles"`
	Scores         ScoreTriple `json:"scores"`
	PredictedLabel Label       `json:"predicted_label"`
	BinaryDecision int         `json:"binary_decision"`
}

// ResultTable is the ordered record set produced by one submission.  Record
// order equals submission order; duplicates are independent records.  Tables
// live only for the request/response cycle that created them — the studio
// never persists them.
type ResultTable struct {
	// SubmissionID uniquely identifies the submission that produced this table.
	SubmissionID string `json:"submission_id"`

	// Threshold echoes the decision threshold the table was built with.
	Threshold float64 `json:"threshold"`

	// ModelVersion identifies the scoring adapter that produced the scores.
	ModelVersion string `json:"model_version,omitempty"`

	Records []ResultRecord `json:"records"`
}

// Len returns the number of records in the table.
func (t *ResultTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// ValidateThreshold reports whether th is a usable decision threshold.
func ValidateThreshold(th float64) bool {
	return th >= 0.0 && th <= 1.0
}
