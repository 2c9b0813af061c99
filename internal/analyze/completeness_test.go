package analyze

import (
	"testing"

	"goqa/domain/core"
	"goqa/domain/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numColumn(name string, values ...float64) table.Column {
	col := table.Column{Name: name}
	for _, v := range values {
		col.Values = append(col.Values, table.NewNumericValue(v))
	}
	return col
}

func TestCheckCompleteness(t *testing.T) {
	// A=[1,2,None,4], B=[1,1,1,1]
	tbl := table.New(
		table.Column{Name: "A", Values: []table.Value{
			table.NewNumericValue(1),
			table.NewNumericValue(2),
			table.NewMissingValue(),
			table.NewNumericValue(4),
		}},
		numColumn("B", 1, 1, 1, 1),
	)

	summary, err := CheckCompleteness(tbl)
	require.NoError(t, err)
	require.Len(t, summary.Rows, 2)

	a := summary.Rows[0]
	assert.Equal(t, "A", a.Column)
	assert.Equal(t, 1, a.Missing)
	assert.Equal(t, 3, a.Present)
	assert.Equal(t, 25.0, a.MissingPct)

	b := summary.Rows[1]
	assert.Equal(t, 0, b.Missing)
	assert.Equal(t, 0.0, b.MissingPct)

	// missing + present equals row count for every column
	for _, row := range summary.Rows {
		assert.Equal(t, summary.RowCount, row.Missing+row.Present)
		assert.GreaterOrEqual(t, row.MissingPct, 0.0)
		assert.LessOrEqual(t, row.MissingPct, 100.0)
	}
}

func TestCheckCompletenessEmptyTable(t *testing.T) {
	tbl := table.New(
		table.Column{Name: "A"},
		table.Column{Name: "B"},
	)

	summary, err := CheckCompleteness(tbl)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.RowCount)
	for _, row := range summary.Rows {
		assert.Equal(t, 0.0, row.MissingPct)
		assert.Equal(t, 0, row.Missing)
	}
}

func TestCheckCompletenessNilTable(t *testing.T) {
	_, err := CheckCompleteness(nil)
	assert.ErrorIs(t, err, core.ErrNilTable)
}

func TestCheckCompletenessRaggedColumn(t *testing.T) {
	// short columns count their absent tail as missing
	tbl := table.New(
		numColumn("full", 1, 2, 3),
		numColumn("short", 1),
	)

	summary, err := CheckCompleteness(tbl)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.RowCount)
	assert.Equal(t, 2, summary.Rows[1].Missing)
	assert.Equal(t, 66.67, summary.Rows[1].MissingPct)
}

func TestVisualizeCompleteness(t *testing.T) {
	tbl := table.New(
		numColumn("clean", 1, 2, 3, 4),
		table.Column{Name: "gappy", Values: []table.Value{
			table.NewNumericValue(1),
			table.NewMissingValue(),
			table.NewMissingValue(),
			table.NewMissingValue(),
		}},
	)

	summary, err := CheckCompleteness(tbl)
	require.NoError(t, err)

	cfg := VisualizeCompleteness(summary, nil)
	require.NotNil(t, cfg)
	assert.Equal(t, "bar", cfg.ChartType)
	require.Len(t, cfg.Series, 1)
	require.Len(t, cfg.Series[0].Data, 2)

	// sorted by descending missingness
	assert.Equal(t, "gappy", cfg.Series[0].Data[0].Label)
	assert.Equal(t, 75.0, cfg.Series[0].Data[0].Value)
	assert.Equal(t, "clean", cfg.Series[0].Data[1].Label)
}

func TestVisualizeCompletenessTiesKeepColumnOrder(t *testing.T) {
	tbl := table.New(
		numColumn("first", 1, 2),
		numColumn("second", 3, 4),
	)

	summary, err := CheckCompleteness(tbl)
	require.NoError(t, err)

	cfg := VisualizeCompleteness(summary, nil)
	assert.Equal(t, "first", cfg.Series[0].Data[0].Label)
	assert.Equal(t, "second", cfg.Series[0].Data[1].Label)
}
