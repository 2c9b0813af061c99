package analyze

import (
	"testing"

	"goqa/domain/core"
	"goqa/domain/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckUniqueness(t *testing.T) {
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

	summary, err := CheckUniqueness(tbl)
	require.NoError(t, err)
	require.Len(t, summary.Rows, 2)

	a := summary.Rows[0]
	assert.Equal(t, 3, a.Distinct)
	assert.Equal(t, 75.0, a.DistinctPct)
	assert.False(t, a.CandidateKey) // one value is missing

	b := summary.Rows[1]
	assert.Equal(t, 1, b.Distinct)
	assert.Equal(t, 25.0, b.DistinctPct)
	assert.False(t, b.CandidateKey)
}

func TestCheckUniquenessCandidateKey(t *testing.T) {
	tbl := table.New(
		numColumn("id", 1, 2, 3, 4),
		numColumn("group", 1, 1, 2, 2),
	)

	summary, err := CheckUniqueness(tbl)
	require.NoError(t, err)

	assert.True(t, summary.Rows[0].CandidateKey)
	assert.Equal(t, 100.0, summary.Rows[0].DistinctPct)
	assert.False(t, summary.Rows[1].CandidateKey)
	assert.Equal(t, []string{"id"}, summary.CandidateKeys())
}

func TestCheckUniquenessSampleCap(t *testing.T) {
	tbl := table.New(numColumn("n", 1, 2, 3, 4, 5, 6, 7, 8))

	summary, err := CheckUniquenessSampled(tbl, 5)
	require.NoError(t, err)

	row := summary.Rows[0]
	assert.Equal(t, 8, row.Distinct)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, row.Samples) // first-seen order
}

func TestCheckUniquenessCrossTypeValuesStayDistinct(t *testing.T) {
	tbl := table.New(table.Column{Name: "v", Values: []table.Value{
		table.NewNumericValue(1),
		table.NewTextValue("1"),
	}})

	summary, err := CheckUniqueness(tbl)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Rows[0].Distinct)
}

func TestCheckUniquenessEmptyTable(t *testing.T) {
	tbl := table.New(table.Column{Name: "A"})

	summary, err := CheckUniqueness(tbl)
	require.NoError(t, err)

	row := summary.Rows[0]
	assert.Equal(t, 0, row.Distinct)
	assert.Equal(t, 0.0, row.DistinctPct)
	assert.False(t, row.CandidateKey)
}

func TestCheckUniquenessNilTable(t *testing.T) {
	_, err := CheckUniqueness(nil)
	assert.ErrorIs(t, err, core.ErrNilTable)
}

func TestVisualizeUniqueness(t *testing.T) {
	tbl := table.New(
		numColumn("id", 1, 2, 3),
		numColumn("group", 1, 1, 2),
	)

	summary, err := CheckUniqueness(tbl)
	require.NoError(t, err)

	cfg := VisualizeUniqueness(summary)
	require.NotNil(t, cfg)
	require.Len(t, cfg.Series, 1)

	// original column order, candidate key highlighted
	assert.Equal(t, "id", cfg.Series[0].Data[0].Label)
	assert.Equal(t, colorCandidateKey, cfg.Series[0].Data[0].Color)
	assert.Equal(t, colorRegular, cfg.Series[0].Data[1].Color)
	require.NotNil(t, cfg.RefLine)
	assert.Equal(t, 100.0, cfg.RefLine.Value)
}
