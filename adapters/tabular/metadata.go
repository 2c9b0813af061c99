package tabular

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"goqa/domain/core"
	"goqa/domain/quality"

	"github.com/xuri/excelize/v2"
)

// MetadataReader adapts ReadMetadata to the metadata port
type MetadataReader struct{}

func (MetadataReader) ReadMetadata(path string) (*quality.FileMetadata, error) {
	return ReadMetadata(path)
}

// ReadMetadata extracts file-level metadata from a CSV or XLSX file: size,
// last-modified time, and row/column counts from a fresh parse. XLSX files
// additionally carry document properties. Nothing is cached between calls.
func ReadMetadata(path string) (*quality.FileMetadata, error) {
	fileType, err := detectFileType(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, core.NewFileNotFoundError(path)
	}
	if err != nil {
		return nil, core.NewParseError(path, err)
	}

	meta := &quality.FileMetadata{
		FileName:     filepath.Base(path),
		Path:         path,
		SizeBytes:    info.Size(),
		SizeHuman:    fmt.Sprintf("%.3f MB", float64(info.Size())/1e6),
		LastModified: info.ModTime(),
	}

	var rows [][]string
	switch fileType {
	case "csv":
		rows, err = readCSVRows(path)
	case "xlsx":
		rows, err = readExcelRows(path)
		if err == nil {
			meta.Doc, err = readDocProperties(path)
		}
	}
	if err != nil {
		return nil, err
	}

	if len(rows) > 0 {
		meta.ColumnCount = len(rows[0])
		meta.RowCount = len(rows) - 1 // header row is not data
		meta.ColumnNames = append(meta.ColumnNames, rows[0]...)
	}

	return meta, nil
}

// readExcelRows reads all rows of the first sheet of an XLSX file
func readExcelRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, core.NewParseError(path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, core.NewParseError(path, fmt.Errorf("workbook has no sheets"))
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, core.NewParseError(path, err)
	}
	return rows, nil
}

// readDocProperties extracts the XLSX document property block
func readDocProperties(path string) (*quality.DocProperties, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, core.NewParseError(path, err)
	}
	defer f.Close()

	props, err := f.GetDocProps()
	if err != nil {
		return nil, core.NewParseError(path, err)
	}

	return &quality.DocProperties{
		Title:    props.Title,
		Subject:  props.Subject,
		Creator:  props.Creator,
		Created:  formatDocTime(props.Created),
		Modified: formatDocTime(props.Modified),
		Category: props.Category,
	}, nil
}

// formatDocTime normalizes the W3CDTF timestamps excelize returns into
// "2006-01-02 15:04:05"; unparseable values pass through unchanged
func formatDocTime(raw string) string {
	if raw == "" {
		return ""
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.Format("2006-01-02 15:04:05")
	}
	return raw
}
