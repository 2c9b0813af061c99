package table

import (
	"goqa/domain/core"
)

// Column holds an ordered sequence of typed scalar values under a name
type Column struct {
	Name   string  `json:"name"`
	Values []Value `json:"values"`
}

// Table is an ordered set of named columns. The library treats tables as
// read-only views: analyzers never mutate them.
type Table struct {
	Columns []Column `json:"columns"`
}

// New creates a table from columns in the given order
func New(columns ...Column) *Table {
	return &Table{Columns: columns}
}

// RowCount returns the number of rows (length of the longest column)
func (t *Table) RowCount() int {
	rows := 0
	for _, col := range t.Columns {
		if len(col.Values) > rows {
			rows = len(col.Values)
		}
	}
	return rows
}

// ColumnCount returns the number of columns
func (t *Table) ColumnCount() int {
	return len(t.Columns)
}

// ColumnNames returns the column names in original order
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// Column returns the named column, or an error if it does not exist
func (t *Table) Column(name string) (*Column, error) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], nil
		}
	}
	return nil, core.NewColumnNotFoundError(name)
}

// IsEmpty reports whether the table has no rows
func (t *Table) IsEmpty() bool {
	return t.RowCount() == 0
}

// Value returns the cell at (row, col index), missing when the column is
// shorter than the table (ragged input)
func (c *Column) Value(row int) Value {
	if row < 0 || row >= len(c.Values) {
		return NewMissingValue()
	}
	return c.Values[row]
}

// MissingCount returns the number of missing values in the column
func (c *Column) MissingCount() int {
	missing := 0
	for _, v := range c.Values {
		if v.IsMissing() {
			missing++
		}
	}
	return missing
}

// NonMissing returns the column's present values in order
func (c *Column) NonMissing() []Value {
	values := make([]Value, 0, len(c.Values))
	for _, v := range c.Values {
		if !v.IsMissing() {
			values = append(values, v)
		}
	}
	return values
}

// NumericValues returns the float64 payloads of the column's numeric cells
func (c *Column) NumericValues() []float64 {
	nums := make([]float64, 0, len(c.Values))
	for _, v := range c.Values {
		if v.Type == TypeNumeric && v.NumericVal != nil {
			nums = append(nums, *v.NumericVal)
		}
	}
	return nums
}
