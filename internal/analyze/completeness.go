// Package analyze implements the columnar data-quality analyzers. Each
// analyzer is a pure, synchronous pass over one table: it opens a read-only
// view of the input and returns an immutable summary with one row per
// column in the table's original order. Analyzers share no state and can
// run in any order, or concurrently, without coordination.
package analyze

import (
	"math"

	"goqa/domain/chart"
	"goqa/domain/core"
	"goqa/domain/quality"
	"goqa/domain/table"
)

// CheckCompleteness counts missing entries per column. Percentages are
// relative to the table's row count, rounded to two decimals; a zero-row
// table yields zero percentages rather than an error.
func CheckCompleteness(tbl *table.Table) (*quality.CompletenessSummary, error) {
	if tbl == nil {
		return nil, core.ErrNilTable
	}

	rows := tbl.RowCount()
	summary := &quality.CompletenessSummary{
		RowCount: rows,
		Rows:     make([]quality.CompletenessRow, 0, tbl.ColumnCount()),
	}

	for _, col := range tbl.Columns {
		present := len(col.NonMissing())
		missing := rows - present // short columns count as missing

		pct := 0.0
		if rows > 0 {
			pct = round2(float64(missing) / float64(rows) * 100)
		}

		summary.Rows = append(summary.Rows, quality.CompletenessRow{
			Column:     col.Name,
			Missing:    missing,
			Present:    present,
			MissingPct: pct,
		})
	}

	return summary, nil
}

// VisualizeCompleteness builds a bar chart of missing percentage per column,
// sorted by descending missingness; ties keep the original column order.
// Pass a nil palette for the default colors.
func VisualizeCompleteness(summary *quality.CompletenessSummary, palette []string) *chart.Config {
	if summary == nil {
		return nil
	}

	rows := make([]quality.CompletenessRow, len(summary.Rows))
	copy(rows, summary.Rows)
	sortRowsDesc(rows, func(r quality.CompletenessRow) float64 { return r.MissingPct })

	points := make([]chart.Point, 0, len(rows))
	for _, row := range rows {
		points = append(points, chart.Point{Label: row.Column, Value: row.MissingPct})
	}

	return &chart.Config{
		ChartType: "bar",
		Title:     "Percentage of Missing Values by Attribute",
		XAxis:     "Column",
		YAxis:     "Percentage (%)",
		Series: []chart.Series{{
			Name: "Missing %",
			Data: points,
		}},
		Colors:   assignColors(len(points), palette),
		ShowGrid: true,
	}
}

// round2 rounds to two decimal places
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
