// Package submission implements the core of the prediction pipeline: turning
// raw shell input (free text or an uploaded CSV) into an ordered identifier
// sequence, and tabulating scored identifiers into a result table.
//
// Everything here is pure and allocation-light; the package has no I/O and no
// knowledge of the scoring backend.
package submission

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"

	"github.com/turtacn/gpcr-studio/pkg/errors"
)

// IdentifierColumn is the CSV column that carries the molecule identifiers.
// Uploads may contain any number of additional columns; they are ignored.
const IdentifierColumn = "smiles"

// NormalizeText splits free text into identifiers: one per line, surrounding
// whitespace trimmed, empty lines dropped.  Order is preserved and duplicates
// are kept — each occurrence is an independent record downstream.
func NormalizeText(text string) []string {
	if text == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// NormalizeCSV extracts the identifier column from an uploaded CSV blob.
//
// The first row is the header.  A header without the "smiles" column yields
// ErrCodeUploadSchema; an unreadable file yields ErrCodeUploadParse carrying
// the underlying cause.  Identifiers are non-empty by definition, so blank
// cells are skipped like the text path skips blank lines; row order is
// preserved.
func NormalizeCSV(blob []byte) ([]string, error) {
	r := csv.NewReader(bytes.NewReader(blob))
	r.FieldsPerRecord = -1 // ragged rows surface as missing cells, not parse errors

	header, err := r.Read()
	if err == io.EOF {
		// An empty file has no columns, so the schema requirement fails first.
		return nil, errors.New(errors.CodeUploadSchema, "uploaded CSV must contain a 'smiles' column")
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUploadParse, "failed to read uploaded CSV")
	}

	col := -1
	for i, name := range header {
		if strings.TrimSpace(name) == IdentifierColumn {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, errors.New(errors.CodeUploadSchema, "uploaded CSV must contain a 'smiles' column").
			WithDetail("columns: " + strings.Join(header, ", "))
	}

	var out []string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeUploadParse, "failed to read uploaded CSV")
		}
		if col < len(row) && strings.TrimSpace(row[col]) != "" {
			out = append(out, row[col])
		}
	}
	return out, nil
}

// Normalize resolves the authoritative identifier sequence for a submission.
//
// An uploaded CSV, when present, takes precedence over free text; the text
// channel is consulted only when no usable upload exists.  An empty result is
// not an error at this layer — the "at least one identifier" precondition is
// enforced where scoring is invoked, so that an empty submission fails with
// ErrCodeNoInput rather than a normalization error.
func Normalize(text string, csvBlob []byte) ([]string, error) {
	if len(csvBlob) > 0 {
		ids, err := NormalizeCSV(csvBlob)
		if err != nil {
			return nil, err
		}
		if len(ids) > 0 {
			return ids, nil
		}
	}
	return NormalizeText(text), nil
}
