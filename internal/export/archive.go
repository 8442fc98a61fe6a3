package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"time"

	"github.com/turtacn/gpcr-studio/pkg/errors"
	"github.com/turtacn/gpcr-studio/pkg/types/prediction"
)

// ArchiveFilename is the download name the shell offers for the archive export.
const ArchiveFilename = "gpcr_per_ligand.zip"

// archiveEpoch is the fixed modification time stamped on every archive entry.
// ZIP headers embed timestamps, so a wall-clock stamp would break the
// byte-reproducibility contract between identical tables.
var archiveEpoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// EntryName returns the archive entry name for the record at 1-based
// submission position n: "ligand_<n>.txt".
func EntryName(n int) string {
	return fmt.Sprintf("ligand_%d.txt", n)
}

// summaryBody renders the fixed human-readable block for one record: the
// identifier line, the three probabilities at 4 decimal places, and the
// predicted label.
func summaryBody(rec prediction.ResultRecord) string {
	return fmt.Sprintf(
		"smiles: %s\np_agonist: %.4f\np_antagonist: %.4f\np_inactive: %.4f\nlabel: %s\n",
		rec.SMILES,
		rec.Scores.Agonist,
		rec.Scores.Antagonist,
		rec.Scores.Inactive,
		rec.PredictedLabel,
	)
}

// WriteArchive serializes the table as a deflate-compressed ZIP archive with
// one text summary per record, named ligand_1.txt through ligand_N.txt in
// record order.  Output is byte-identical for identical tables.
func WriteArchive(table *prediction.ResultTable) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for i, rec := range table.Records {
		hdr := &zip.FileHeader{
			Name:     EntryName(i + 1),
			Method:   zip.Deflate,
			Modified: archiveEpoch,
		}
		w, err := zw.CreateHeader(hdr)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInternal, "failed to create archive entry")
		}
		if _, err := w.Write([]byte(summaryBody(rec))); err != nil {
			return nil, errors.Wrap(err, errors.CodeInternal, "failed to write archive entry")
		}
	}

	if err := zw.Close(); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to finalize archive")
	}
	return buf.Bytes(), nil
}
