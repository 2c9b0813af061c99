package tabular

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"goqa/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadMetadataCSV(t *testing.T) {
	path := writeTempCSV(t, "id,name\n1,alice\n2,bob\n3,carol\n")

	meta, err := ReadMetadata(path)
	require.NoError(t, err)

	assert.Equal(t, "data.csv", meta.FileName)
	assert.Equal(t, 3, meta.RowCount) // header row is not data
	assert.Equal(t, 2, meta.ColumnCount)
	assert.Equal(t, []string{"id", "name"}, meta.ColumnNames)
	assert.Greater(t, meta.SizeBytes, int64(0))
	assert.Contains(t, meta.SizeHuman, "MB")
	assert.WithinDuration(t, time.Now(), meta.LastModified, time.Minute)
	assert.Nil(t, meta.Doc) // CSV files carry no document properties
}

func TestReadMetadataXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"a", "b", "c"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{1, 2, 3}))
	require.NoError(t, f.SetDocProps(&excelize.DocProperties{
		Title:    "Quarterly Numbers",
		Creator:  "finance",
		Subject:  "Q3",
		Category: "reporting",
	}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	meta, err := ReadMetadata(path)
	require.NoError(t, err)

	assert.Equal(t, 1, meta.RowCount)
	assert.Equal(t, 3, meta.ColumnCount)
	require.NotNil(t, meta.Doc)
	assert.Equal(t, "Quarterly Numbers", meta.Doc.Title)
	assert.Equal(t, "finance", meta.Doc.Creator)
	assert.Equal(t, "reporting", meta.Doc.Category)
}

func TestReadMetadataMissingFile(t *testing.T) {
	_, err := ReadMetadata(filepath.Join(t.TempDir(), "ghost.csv"))
	assert.True(t, core.IsFileNotFound(err), "expected file-not-found, got %v", err)
}

func TestReadMetadataUnsupportedFormat(t *testing.T) {
	_, err := ReadMetadata("data.json")
	assert.True(t, core.IsUnsupportedFormat(err), "expected unsupported-format, got %v", err)
}

func TestReadMetadataCorruptXLSXIsParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0o644))

	_, err := ReadMetadata(path)
	assert.True(t, core.IsParseError(err), "expected parse error, got %v", err)
}
