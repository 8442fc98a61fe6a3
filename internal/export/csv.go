// Package export serializes result tables into the two downstream artifacts
// offered by the shell: a flat CSV document and a ZIP archive of per-ligand
// text summaries.  Both serializers are pure functions of the table and are
// byte-reproducible for identical input, which the test fixtures rely on.
package export

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/turtacn/gpcr-studio/pkg/errors"
	"github.com/turtacn/gpcr-studio/pkg/types/prediction"
)

// CSVFilename is the download name the shell offers for the flat export.
const CSVFilename = "gpcr_predictions.csv"

// csvHeader fixes the column order of the flat export.  The identifier column
// keeps its historical "smiles" name.
var csvHeader = []string{
	"smiles",
	"p_agonist",
	"p_antagonist",
	"p_inactive",
	"predicted_label",
	"binary_decision",
}

// formatFloat renders a probability at full precision: the shortest decimal
// string that round-trips back to the same float64.  No truncation — the flat
// export is the machine-readable artifact.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteCSV serializes the table as UTF-8 comma-separated text: the fixed
// header row followed by one data row per record, in record order.  Fields
// are quoted only when the CSV dialect requires it (embedded delimiters or
// quotes in a SMILES string).
func WriteCSV(table *prediction.ResultTable) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to write CSV header")
	}
	for _, rec := range table.Records {
		row := []string{
			rec.SMILES,
			formatFloat(rec.Scores.Agonist),
			formatFloat(rec.Scores.Antagonist),
			formatFloat(rec.Scores.Inactive),
			string(rec.PredictedLabel),
			strconv.Itoa(rec.BinaryDecision),
		}
		if err := w.Write(row); err != nil {
			return nil, errors.Wrap(err, errors.CodeInternal, "failed to write CSV row")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to flush CSV")
	}
	return buf.Bytes(), nil
}

// ReadCSV parses a flat export back into a result table.  It is the inverse
// of WriteCSV for the fields the export carries (submission metadata is not
// part of the flat format).  Used by round-trip tests and by callers that
// re-ingest previously exported tables.
func ReadCSV(blob []byte) (*prediction.ResultTable, error) {
	r := csv.NewReader(bytes.NewReader(blob))

	header, err := r.Read()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUploadParse, "failed to read exported CSV")
	}
	if len(header) != len(csvHeader) {
		return nil, errors.New(errors.CodeUploadSchema, "unexpected export header")
	}
	for i, name := range header {
		if name != csvHeader[i] {
			return nil, errors.New(errors.CodeUploadSchema, "unexpected export header").
				WithDetail("column " + strconv.Itoa(i) + ": " + name)
		}
	}

	table := &prediction.ResultTable{}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeUploadParse, "failed to read exported CSV")
		}
		rec, err := parseRecord(row)
		if err != nil {
			return nil, err
		}
		table.Records = append(table.Records, rec)
	}
	return table, nil
}

func parseRecord(row []string) (prediction.ResultRecord, error) {
	var rec prediction.ResultRecord
	if len(row) != len(csvHeader) {
		return rec, errors.New(errors.CodeUploadParse, "unexpected export row width")
	}

	agonist, err := strconv.ParseFloat(row[1], 64)
	if err != nil {
		return rec, errors.Wrap(err, errors.CodeUploadParse, "invalid p_agonist value")
	}
	antagonist, err := strconv.ParseFloat(row[2], 64)
	if err != nil {
		return rec, errors.Wrap(err, errors.CodeUploadParse, "invalid p_antagonist value")
	}
	inactive, err := strconv.ParseFloat(row[3], 64)
	if err != nil {
		return rec, errors.Wrap(err, errors.CodeUploadParse, "invalid p_inactive value")
	}
	decision, err := strconv.Atoi(row[5])
	if err != nil {
		return rec, errors.Wrap(err, errors.CodeUploadParse, "invalid binary_decision value")
	}

	rec.SMILES = row[0]
	rec.Scores = prediction.ScoreTriple{Agonist: agonist, Antagonist: antagonist, Inactive: inactive}
	rec.PredictedLabel = prediction.Label(row[4])
	rec.BinaryDecision = decision
	return rec, nil
}
