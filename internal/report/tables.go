// Package report turns quality summaries into render-ready tables and
// exportable markdown/HTML documents.
package report

import (
	"fmt"
	"strings"

	"goqa/domain/chart"
	"goqa/domain/quality"
)

// BuildTable creates a render-ready table. Underscores in header keys become
// spaces in the display labels.
func BuildTable(title string, headers []string, rows [][]string) *chart.TableData {
	columns := make([]chart.Column, len(headers))
	for i, header := range headers {
		columns[i] = chart.Column{
			Key:   header,
			Label: strings.ReplaceAll(header, "_", " "),
			Type:  "text",
			Align: "left",
		}
	}
	return &chart.TableData{
		Title:   title,
		Columns: columns,
		Rows:    rows,
	}
}

// CompletenessTable renders a completeness summary as a table
func CompletenessTable(summary *quality.CompletenessSummary) *chart.TableData {
	rows := make([][]string, 0, len(summary.Rows))
	for _, r := range summary.Rows {
		rows = append(rows, []string{
			r.Column,
			fmt.Sprintf("%d", r.Missing),
			fmt.Sprintf("%.2f%%", r.MissingPct),
		})
	}
	return BuildTable("Completeness",
		[]string{"Column", "Missing_Values", "Missing_Percentage"}, rows)
}

// ConsistencyTable renders a consistency summary as a table
func ConsistencyTable(summary *quality.ConsistencySummary) *chart.TableData {
	rows := make([][]string, 0, len(summary.Rows))
	for _, r := range summary.Rows {
		types := make([]string, len(r.Types))
		for i, t := range r.Types {
			types[i] = string(t)
		}
		rows = append(rows, []string{
			r.Column,
			string(r.DominantType),
			strings.Join(types, ", "),
			fmt.Sprintf("%d", r.Mismatches),
			fmt.Sprintf("%.2f%%", r.MismatchPct),
		})
	}
	return BuildTable("Consistency",
		[]string{"Column", "Dominant_Type", "Observed_Types", "Mismatches", "Mismatch_Percentage"}, rows)
}

// UniquenessTable renders a uniqueness summary as a table
func UniquenessTable(summary *quality.UniquenessSummary) *chart.TableData {
	rows := make([][]string, 0, len(summary.Rows))
	for _, r := range summary.Rows {
		key := ""
		if r.CandidateKey {
			key = "yes"
		}
		rows = append(rows, []string{
			r.Column,
			fmt.Sprintf("%d", r.Distinct),
			fmt.Sprintf("%.2f%%", r.DistinctPct),
			strings.Join(r.Samples, ", "),
			key,
		})
	}
	return BuildTable("Uniqueness",
		[]string{"Column", "Distinct_Values", "Distinct_Percentage", "Sample_Values", "Candidate_Key"}, rows)
}
