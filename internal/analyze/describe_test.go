package analyze

import (
	"testing"

	"goqa/domain/core"
	"goqa/domain/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeNumericColumn(t *testing.T) {
	tbl := table.New(
		numColumn("score", 1, 2, 3, 4, 5),
		table.Column{Name: "label", Values: []table.Value{
			table.NewTextValue("a"),
			table.NewTextValue("b"),
			table.NewTextValue("c"),
			table.NewTextValue("d"),
			table.NewTextValue("e"),
		}},
	)

	summary, err := Describe(tbl)
	require.NoError(t, err)
	require.Len(t, summary.Columns, 1) // text column skipped

	s := summary.Columns[0]
	assert.Equal(t, "score", s.Column)
	assert.Equal(t, 5, s.Count)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 5.0, s.Max)
	assert.Equal(t, 3.0, s.Mean)
	assert.Equal(t, 3.0, s.Median)
	assert.InDelta(t, 1.414, s.StdDev, 0.01)
	assert.Equal(t, 0, s.Outliers)
}

func TestDescribeSkipsMissingValues(t *testing.T) {
	tbl := table.New(table.Column{Name: "v", Values: []table.Value{
		table.NewNumericValue(10),
		table.NewMissingValue(),
		table.NewNumericValue(20),
	}})

	summary, err := Describe(tbl)
	require.NoError(t, err)
	require.Len(t, summary.Columns, 1)
	assert.Equal(t, 2, summary.Columns[0].Count)
	assert.Equal(t, 15.0, summary.Columns[0].Mean)
}

func TestDescribeOutlierDetection(t *testing.T) {
	tbl := table.New(numColumn("v", 10, 11, 12, 11, 10, 12, 11, 1000))

	summary, err := Describe(tbl)
	require.NoError(t, err)
	require.Len(t, summary.Columns, 1)
	assert.Equal(t, 1, summary.Columns[0].Outliers)
}

func TestDescribeNonNumericTableIsEmpty(t *testing.T) {
	tbl := table.New(table.Column{Name: "label", Values: []table.Value{
		table.NewTextValue("x"),
	}})

	summary, err := Describe(tbl)
	require.NoError(t, err)
	assert.Empty(t, summary.Columns)
}

func TestDescribeNilTable(t *testing.T) {
	_, err := Describe(nil)
	assert.ErrorIs(t, err, core.ErrNilTable)
}

func TestSampleSkewnessSymmetricData(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5}
	assert.InDelta(t, 0.0, sampleSkewness(data, 3, 1.414), 0.001)
}
