package ports

import (
	"goqa/domain/quality"
	"goqa/domain/table"
)

// TableReaderPort loads tabular files into typed tables
type TableReaderPort interface {
	ReadTable(path string) (*table.Table, error)
}

// MetadataPort reads file-level metadata from tabular files
type MetadataPort interface {
	ReadMetadata(path string) (*quality.FileMetadata, error)
}
