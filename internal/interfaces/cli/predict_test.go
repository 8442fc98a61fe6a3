package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	predtypes "github.com/turtacn/gpcr-studio/pkg/types/prediction"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPredictInlineSMILES(t *testing.T) {
	out, err := execute(t, "predict", "--smiles", "CCO", "--smiles", "CCN", "-o", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "smiles,p_agonist,p_antagonist,p_inactive,predicted_label,binary_decision", lines[0])
	assert.Equal(t, "CCO,0.55,0.35,0.1,agonist,1", lines[1])
	assert.Equal(t, "CCN,0.55,0.35,0.1,agonist,1", lines[2])
}

func TestPredictJSONOutput(t *testing.T) {
	out, err := execute(t, "predict", "--smiles", "CCO", "-o", "json")
	require.NoError(t, err)

	var table predtypes.ResultTable
	require.NoError(t, json.Unmarshal([]byte(out), &table))
	require.Len(t, table.Records, 1)
	assert.Equal(t, predtypes.LabelAgonist, table.Records[0].PredictedLabel)
	assert.Equal(t, "mock-constant-v1", table.ModelVersion)
}

func TestPredictFromTextFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ligands.txt")
	require.NoError(t, os.WriteFile(path, []byte("CCO\n\nCCN\n"), 0o644))

	out, err := execute(t, "predict", "--input", path, "-o", "csv")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "\n"))
}

func TestPredictCSVWinsOverInline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ligands.csv")
	require.NoError(t, os.WriteFile(path, []byte("smiles,name\nCCO,ethanol\n"), 0o644))

	out, err := execute(t, "predict", "--smiles", "CCCC", "--csv", path, "-o", "json")
	require.NoError(t, err)

	var table predtypes.ResultTable
	require.NoError(t, json.Unmarshal([]byte(out), &table))
	require.Len(t, table.Records, 1)
	assert.Equal(t, "CCO", table.Records[0].SMILES)
}

func TestPredictWritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	csvOut := filepath.Join(dir, "results.csv")
	zipOut := filepath.Join(dir, "ligands.zip")

	_, err := execute(t, "predict", "--smiles", "CCO",
		"--csv-out", csvOut, "--archive-out", zipOut)
	require.NoError(t, err)

	csvBlob, err := os.ReadFile(csvOut)
	require.NoError(t, err)
	assert.Contains(t, string(csvBlob), "CCO,0.55,0.35,0.1,agonist,1")

	zipBlob, err := os.ReadFile(zipOut)
	require.NoError(t, err)
	assert.Equal(t, "PK", string(zipBlob[:2]))
}

func TestPredictNoInputFails(t *testing.T) {
	_, err := execute(t, "predict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one SMILES")
}

func TestPredictBadThreshold(t *testing.T) {
	_, err := execute(t, "predict", "--smiles", "CCO", "--threshold", "1.5")
	require.Error(t, err)
}

func TestPredictThresholdZeroIsValid(t *testing.T) {
	out, err := execute(t, "predict", "--smiles", "CCO", "--threshold", "0", "-o", "json")
	require.NoError(t, err)

	var table predtypes.ResultTable
	require.NoError(t, json.Unmarshal([]byte(out), &table))
	assert.Equal(t, 0.0, table.Threshold)
	assert.Equal(t, 1, table.Records[0].BinaryDecision)
}

func TestPredictUnknownOutputFormat(t *testing.T) {
	_, err := execute(t, "predict", "--smiles", "CCO", "-o", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}
