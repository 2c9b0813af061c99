package analyze

import (
	"goqa/domain/chart"
	"goqa/domain/core"
	"goqa/domain/quality"
	"goqa/domain/table"
)

// typePrecedence breaks majority-vote ties: numeric beats date beats
// boolean beats text. Documented policy, not an accident of map order.
var typePrecedence = []table.ValueType{
	table.TypeNumeric,
	table.TypeDate,
	table.TypeBoolean,
	table.TypeText,
}

// CheckConsistency infers each column's dominant value type by majority
// vote over non-missing entries and counts values that deviate from it.
// Percentages are relative to the non-missing count.
func CheckConsistency(tbl *table.Table) (*quality.ConsistencySummary, error) {
	if tbl == nil {
		return nil, core.ErrNilTable
	}

	summary := &quality.ConsistencySummary{
		RowCount: tbl.RowCount(),
		Rows:     make([]quality.ConsistencyRow, 0, tbl.ColumnCount()),
	}

	for _, col := range tbl.Columns {
		summary.Rows = append(summary.Rows, checkColumnConsistency(col))
	}

	return summary, nil
}

func checkColumnConsistency(col table.Column) quality.ConsistencyRow {
	counts := make(map[table.ValueType]int)
	nonMissing := 0
	for _, v := range col.Values {
		if v.IsMissing() {
			continue
		}
		counts[v.Type]++
		nonMissing++
	}

	row := quality.ConsistencyRow{
		Column:       col.Name,
		DominantType: table.TypeMissing,
		NonMissing:   nonMissing,
	}
	if nonMissing == 0 {
		return row
	}

	// Precedence order makes both the dominant pick and the type list
	// deterministic.
	dominantCount := 0
	for _, t := range typePrecedence {
		count := counts[t]
		if count == 0 {
			continue
		}
		row.Types = append(row.Types, t)
		if count > dominantCount {
			row.DominantType = t
			dominantCount = count
		}
	}

	row.Mismatches = nonMissing - dominantCount
	row.MismatchPct = round2(float64(row.Mismatches) / float64(nonMissing) * 100)
	return row
}

// VisualizeConsistency builds a bar chart of inconsistency percentage per
// column, sorted descending with ties in original column order. The zero
// line marks the ideal of a single uniform type.
func VisualizeConsistency(summary *quality.ConsistencySummary, palette []string) *chart.Config {
	if summary == nil {
		return nil
	}

	rows := make([]quality.ConsistencyRow, len(summary.Rows))
	copy(rows, summary.Rows)
	sortRowsDesc(rows, func(r quality.ConsistencyRow) float64 { return r.MismatchPct })

	points := make([]chart.Point, 0, len(rows))
	for _, row := range rows {
		points = append(points, chart.Point{Label: row.Column, Value: row.MismatchPct})
	}

	return &chart.Config{
		ChartType: "bar",
		Title:     "Data Type Consistency Across Columns",
		XAxis:     "Column",
		YAxis:     "Inconsistent Values (%)",
		Series: []chart.Series{{
			Name: "Inconsistency %",
			Data: points,
		}},
		Colors:   assignColors(len(points), palette),
		ShowGrid: true,
		RefLine:  &chart.RefLine{Value: 0, Label: "Ideal (single type)"},
	}
}
