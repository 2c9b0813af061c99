package analyze

import (
	"goqa/domain/chart"
	"goqa/domain/core"
	"goqa/domain/quality"
	"goqa/domain/table"
)

// DefaultSampleValues is how many distinct sample values a uniqueness row
// carries by default.
const DefaultSampleValues = 5

// CheckUniqueness counts distinct values per column. Missing values are
// excluded from the distinct count; the distinct percentage is relative to
// the total row count. A column is a candidate key iff every row holds a
// distinct, non-missing value.
func CheckUniqueness(tbl *table.Table) (*quality.UniquenessSummary, error) {
	return CheckUniquenessSampled(tbl, DefaultSampleValues)
}

// CheckUniquenessSampled is CheckUniqueness with a configurable number of
// sample values per column.
func CheckUniquenessSampled(tbl *table.Table, sampleValues int) (*quality.UniquenessSummary, error) {
	if tbl == nil {
		return nil, core.ErrNilTable
	}

	rows := tbl.RowCount()
	summary := &quality.UniquenessSummary{
		RowCount: rows,
		Rows:     make([]quality.UniquenessRow, 0, tbl.ColumnCount()),
	}

	for _, col := range tbl.Columns {
		seen := make(map[string]struct{})
		samples := make([]string, 0, sampleValues)
		present := 0

		for _, v := range col.Values {
			if v.IsMissing() {
				continue
			}
			present++
			key := v.Key()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			if len(samples) < sampleValues {
				samples = append(samples, v.String())
			}
		}

		missing := rows - present
		pct := 0.0
		if rows > 0 {
			pct = round2(float64(len(seen)) / float64(rows) * 100)
		}

		summary.Rows = append(summary.Rows, quality.UniquenessRow{
			Column:       col.Name,
			Distinct:     len(seen),
			DistinctPct:  pct,
			Missing:      missing,
			Samples:      samples,
			CandidateKey: rows > 0 && len(seen) == rows && missing == 0,
		})
	}

	return summary, nil
}

// VisualizeUniqueness builds a bar chart of distinct percentage per column
// in original column order. Candidate-key columns are highlighted and the
// 100% line marks full uniqueness.
func VisualizeUniqueness(summary *quality.UniquenessSummary) *chart.Config {
	if summary == nil {
		return nil
	}

	points := make([]chart.Point, 0, len(summary.Rows))
	for _, row := range summary.Rows {
		color := colorRegular
		if row.CandidateKey {
			color = colorCandidateKey
		}
		points = append(points, chart.Point{
			Label: row.Column,
			Value: row.DistinctPct,
			Color: color,
		})
	}

	return &chart.Config{
		ChartType: "bar",
		Title:     "Percentage of Unique Values by Column",
		XAxis:     "Column",
		YAxis:     "Percentage (%)",
		Series: []chart.Series{{
			Name: "Distinct %",
			Data: points,
		}},
		ShowLegend: true,
		ShowGrid:   true,
		RefLine:    &chart.RefLine{Value: 100, Label: "100% Line"},
	}
}
