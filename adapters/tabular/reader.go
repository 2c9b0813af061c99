package tabular

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"goqa/adapters/tabular/classifier"
	"goqa/domain/core"
	"goqa/domain/table"
	"goqa/internal"
)

// DataReader loads CSV and XLSX files into typed tables
type DataReader struct {
	classifier *classifier.Classifier
	log        *internal.Logger
}

// NewDataReader creates a reader with the default classification rules
func NewDataReader() *DataReader {
	return NewDataReaderWith(classifier.New(classifier.DefaultConfig()))
}

// NewDataReaderWith creates a reader using the given classifier
func NewDataReaderWith(c *classifier.Classifier) *DataReader {
	return &DataReader{
		classifier: c,
		log:        internal.DefaultLogger.WithComponent("DataReader"),
	}
}

// ReadTable reads a CSV or XLSX file into a typed table. The first row is
// the header; ragged data rows are padded with missing values.
func (r *DataReader) ReadTable(path string) (*table.Table, error) {
	fileType, err := detectFileType(path)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, core.NewFileNotFoundError(path)
	}

	var rows [][]string
	switch fileType {
	case "csv":
		rows, err = readCSVRows(path)
	case "xlsx":
		rows, err = readExcelRows(path)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, core.NewParseError(path, core.ErrParseFailed)
	}

	tbl := r.buildTable(rows)
	r.log.Info("%s file read (%d columns, %d rows)",
		strings.ToUpper(fileType), tbl.ColumnCount(), tbl.RowCount())
	return tbl, nil
}

// buildTable converts raw string rows (header first) into a typed table
func (r *DataReader) buildTable(rows [][]string) *table.Table {
	headerRow := rows[0]
	columns := make([]table.Column, len(headerRow))
	for i, header := range headerRow {
		columns[i] = table.Column{
			Name:   strings.TrimSpace(header),
			Values: make([]table.Value, 0, len(rows)-1),
		}
	}

	for _, row := range rows[1:] {
		for j := range columns {
			if j < len(row) {
				columns[j].Values = append(columns[j].Values, r.classifier.Classify(row[j]))
			} else {
				columns[j].Values = append(columns[j].Values, table.NewMissingValue())
			}
		}
	}

	return table.New(columns...)
}

// detectFileType resolves the file type from the extension
func detectFileType(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return "csv", nil
	case ".xlsx":
		return "xlsx", nil
	default:
		return "", core.NewUnsupportedFormatError(filepath.Ext(path))
	}
}

// readCSVRows reads all rows of a CSV file
func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, core.NewParseError(path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // ragged rows are padded later
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, core.NewParseError(path, err)
	}
	return rows, nil
}
