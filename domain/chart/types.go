// Package chart defines render-ready chart and table objects. Concrete
// rendering (static image vs interactive figure) is the caller's concern;
// the shapes here match what charting frontends consume unchanged.
package chart

// Config defines how to render a chart.
type Config struct {
	ChartType  string   `json:"chartType"`
	Title      string   `json:"title"`
	XAxis      string   `json:"xAxis,omitempty"`
	YAxis      string   `json:"yAxis,omitempty"`
	Series     []Series `json:"series"`
	Colors     []string `json:"colors,omitempty"`
	ShowLegend bool     `json:"showLegend"`
	ShowGrid   bool     `json:"showGrid"`

	// RefLine draws a horizontal reference line (e.g. the 100% uniqueness
	// mark); nil means no line.
	RefLine *RefLine `json:"refLine,omitempty"`
}

// Series represents a data series in a chart.
type Series struct {
	Name  string  `json:"name"`
	Data  []Point `json:"data"`
	Color string  `json:"color,omitempty"`
}

// Point represents a single data point. Color overrides the series color
// for that bar when set.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color,omitempty"`
}

// RefLine is a horizontal annotation line.
type RefLine struct {
	Value float64 `json:"value"`
	Label string  `json:"label,omitempty"`
}

// TableData defines how to render a table.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number", "percent"
	Align string `json:"align"` // "left", "center", "right"
}
