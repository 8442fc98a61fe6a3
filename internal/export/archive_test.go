package export

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/gpcr-studio/pkg/types/prediction"
)

func readEntries(t *testing.T, blob []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(blob), int64(len(blob)))
	require.NoError(t, err)

	out := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		out[f.Name] = string(body)
	}
	return out
}

func TestWriteArchiveEntryNamesAndOrder(t *testing.T) {
	blob, err := WriteArchive(sampleTable())
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(blob), int64(len(blob)))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)
	assert.Equal(t, "ligand_1.txt", zr.File[0].Name)
	assert.Equal(t, "ligand_2.txt", zr.File[1].Name)
}

func TestWriteArchiveBody(t *testing.T) {
	blob, err := WriteArchive(sampleTable())
	require.NoError(t, err)

	entries := readEntries(t, blob)
	want := "smiles: CCO\n" +
		"p_agonist: 0.5500\n" +
		"p_antagonist: 0.3500\n" +
		"p_inactive: 0.1000\n" +
		"label: agonist\n"
	assert.Equal(t, want, entries["ligand_1.txt"])
}

func TestWriteArchiveEmptyTable(t *testing.T) {
	blob, err := WriteArchive(&prediction.ResultTable{})
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(blob), int64(len(blob)))
	require.NoError(t, err)
	assert.Empty(t, zr.File)
}

func TestWriteArchiveByteReproducible(t *testing.T) {
	a, err := WriteArchive(sampleTable())
	require.NoError(t, err)
	b, err := WriteArchive(sampleTable())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEntryNameIsOneBased(t *testing.T) {
	assert.Equal(t, "ligand_1.txt", EntryName(1))
	assert.Equal(t, "ligand_12.txt", EntryName(12))
}
