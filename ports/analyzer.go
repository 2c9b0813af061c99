package ports

import (
	"context"

	"goqa/domain/quality"
	"goqa/domain/table"
)

// AnalyzerPort runs a full quality assessment over one table
type AnalyzerPort interface {
	Assess(ctx context.Context, tbl *table.Table) (*quality.Report, error)
}
