// Package goqa assesses the quality of tabular datasets: completeness
// (missing values), consistency (type uniformity per column), uniqueness
// (distinct values and candidate keys), plus file metadata extraction and
// chart construction for each metric.
//
// Usage:
//
//	tbl, err := tabular.NewDataReader().ReadTable("data.csv")
//	summary, err := goqa.CheckCompleteness(tbl)
//	chart := goqa.VisualizeCompleteness(summary)
//
// Every check is a pure, synchronous pass over a read-only view of one
// table; checks share no state and are safe to call concurrently as long
// as the caller does not mutate the table underneath them.
package goqa

import (
	"context"

	"goqa/adapters/tabular"
	"goqa/domain/chart"
	"goqa/domain/quality"
	"goqa/domain/table"
	"goqa/internal/analyze"
	"goqa/internal/report"

	"goqa/app"
)

// CheckCompleteness counts missing entries per column
func CheckCompleteness(tbl *table.Table) (*quality.CompletenessSummary, error) {
	return analyze.CheckCompleteness(tbl)
}

// VisualizeCompleteness builds the missingness bar chart
func VisualizeCompleteness(summary *quality.CompletenessSummary) *chart.Config {
	return analyze.VisualizeCompleteness(summary, nil)
}

// CheckConsistency infers dominant column types and counts deviations
func CheckConsistency(tbl *table.Table) (*quality.ConsistencySummary, error) {
	return analyze.CheckConsistency(tbl)
}

// VisualizeConsistency builds the inconsistency bar chart
func VisualizeConsistency(summary *quality.ConsistencySummary) *chart.Config {
	return analyze.VisualizeConsistency(summary, nil)
}

// VerifyConsistency runs the deep per-column inconsistency checks
func VerifyConsistency(tbl *table.Table) (*quality.VerificationReport, error) {
	return analyze.VerifyConsistency(tbl)
}

// CheckUniqueness counts distinct values and flags candidate keys
func CheckUniqueness(tbl *table.Table) (*quality.UniquenessSummary, error) {
	return analyze.CheckUniqueness(tbl)
}

// VisualizeUniqueness builds the distinct-percentage bar chart
func VisualizeUniqueness(summary *quality.UniquenessSummary) *chart.Config {
	return analyze.VisualizeUniqueness(summary)
}

// Describe computes descriptive statistics for numeric columns
func Describe(tbl *table.Table) (*quality.DescribeSummary, error) {
	return analyze.Describe(tbl)
}

// GetMetadata reads file-level metadata from a CSV or XLSX file
func GetMetadata(path string) (*quality.FileMetadata, error) {
	return tabular.ReadMetadata(path)
}

// ReadTable loads a CSV or XLSX file into a typed table
func ReadTable(path string) (*table.Table, error) {
	return tabular.NewDataReader().ReadTable(path)
}

// Assess runs every analyzer over a table and returns the combined report
func Assess(ctx context.Context, tbl *table.Table) (*quality.Report, error) {
	service := app.NewQualityService(nil, nil, quality.DefaultConfig())
	return service.Assess(ctx, tbl)
}

// AssessFile reads a file and assesses the resulting table
func AssessFile(ctx context.Context, path string) (*quality.Report, error) {
	service := app.NewQualityService(tabular.NewDataReader(), tabular.MetadataReader{}, quality.DefaultConfig())
	return service.AssessFile(ctx, path)
}

// RenderMarkdown renders a report as markdown
func RenderMarkdown(r *quality.Report) string {
	return report.RenderMarkdown(r)
}

// RenderHTML renders a report as HTML
func RenderHTML(r *quality.Report) []byte {
	return report.RenderHTML(r)
}
