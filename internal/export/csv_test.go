package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/gpcr-studio/pkg/errors"
	"github.com/turtacn/gpcr-studio/pkg/types/prediction"
)

func sampleTable() *prediction.ResultTable {
	return &prediction.ResultTable{
		SubmissionID: "sub-1",
		Threshold:    0.5,
		Records: []prediction.ResultRecord{
			{
				SMILES:         "CCO",
				Scores:         prediction.ScoreTriple{Agonist: 0.55, Antagonist: 0.35, Inactive: 0.10},
				PredictedLabel: prediction.LabelAgonist,
				BinaryDecision: 1,
			},
			{
				SMILES:         "CCN",
				Scores:         prediction.ScoreTriple{Agonist: 0.55, Antagonist: 0.35, Inactive: 0.10},
				PredictedLabel: prediction.LabelAgonist,
				BinaryDecision: 1,
			},
		},
	}
}

func TestWriteCSVLayout(t *testing.T) {
	blob, err := WriteCSV(sampleTable())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(blob), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "smiles,p_agonist,p_antagonist,p_inactive,predicted_label,binary_decision", lines[0])
	assert.Equal(t, "CCO,0.55,0.35,0.1,agonist,1", lines[1])
	assert.Equal(t, "CCN,0.55,0.35,0.1,agonist,1", lines[2])
}

func TestWriteCSVEmptyTable(t *testing.T) {
	blob, err := WriteCSV(&prediction.ResultTable{})
	require.NoError(t, err)
	assert.Equal(t, "smiles,p_agonist,p_antagonist,p_inactive,predicted_label,binary_decision\n", string(blob))
}

func TestWriteCSVFullPrecision(t *testing.T) {
	table := &prediction.ResultTable{Records: []prediction.ResultRecord{{
		SMILES:         "CCO",
		Scores:         prediction.ScoreTriple{Agonist: 1.0 / 3.0, Antagonist: 0.2, Inactive: 0.1},
		PredictedLabel: prediction.LabelAgonist,
	}}}
	blob, err := WriteCSV(table)
	require.NoError(t, err)
	assert.Contains(t, string(blob), "0.3333333333333333")
}

func TestWriteCSVQuotesEmbeddedDelimiter(t *testing.T) {
	table := &prediction.ResultTable{Records: []prediction.ResultRecord{{
		SMILES:         "C,C", // not chemistry, but identifiers are opaque here
		Scores:         prediction.ScoreTriple{},
		PredictedLabel: prediction.LabelInactive,
	}}}
	blob, err := WriteCSV(table)
	require.NoError(t, err)
	assert.Contains(t, string(blob), "\"C,C\"")
}

func TestWriteCSVDeterministic(t *testing.T) {
	a, err := WriteCSV(sampleTable())
	require.NoError(t, err)
	b, err := WriteCSV(sampleTable())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCSVRoundTrip(t *testing.T) {
	original := sampleTable()
	blob, err := WriteCSV(original)
	require.NoError(t, err)

	parsed, err := ReadCSV(blob)
	require.NoError(t, err)
	assert.Equal(t, original.Records, parsed.Records)
}

func TestReadCSVRejectsForeignHeader(t *testing.T) {
	_, err := ReadCSV([]byte("id,name\n1,x\n"))
	assert.Error(t, err)
}

func TestReadCSVRejectsMalformedBody(t *testing.T) {
	// An unterminated quote mid-file must surface as a parse error, never as
	// a silently truncated table.
	blob := "smiles,p_agonist,p_antagonist,p_inactive,predicted_label,binary_decision\n" +
		"CCO,0.55,0.35,0.1,agonist,1\n" +
		"\"CCN,0.55,0.35,0.1,agonist,1\n"

	table, err := ReadCSV([]byte(blob))
	require.Error(t, err)
	assert.Nil(t, table)
	assert.True(t, errors.IsCode(err, errors.CodeUploadParse))
}
