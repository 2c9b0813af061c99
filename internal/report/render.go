package report

import (
	"fmt"
	"strings"

	"goqa/domain/chart"
	"goqa/domain/quality"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// RenderMarkdown renders an assessment report as a markdown document
func RenderMarkdown(r *quality.Report) string {
	var b strings.Builder

	b.WriteString("# Data Quality Report\n\n")
	fmt.Fprintf(&b, "- Report ID: `%s`\n", r.ID.String())
	fmt.Fprintf(&b, "- Computed at: %s\n", r.ComputedAt.String())
	fmt.Fprintf(&b, "- Rows: %d, Columns: %d\n", r.RowCount, r.ColumnCount)
	fmt.Fprintf(&b, "- Quality score: %.2f\n\n", r.QualityScore)

	if r.Metadata != nil {
		b.WriteString("## File\n\n")
		fmt.Fprintf(&b, "- Name: %s\n", r.Metadata.FileName)
		fmt.Fprintf(&b, "- Size: %s\n", r.Metadata.SizeHuman)
		fmt.Fprintf(&b, "- Last modified: %s\n\n", r.Metadata.LastModified.Format("2006-01-02 15:04:05"))
	}

	if r.Completeness != nil {
		writeMarkdownTable(&b, CompletenessTable(r.Completeness))
	}
	if r.Consistency != nil {
		writeMarkdownTable(&b, ConsistencyTable(r.Consistency))
	}
	if r.Uniqueness != nil {
		writeMarkdownTable(&b, UniquenessTable(r.Uniqueness))
		if keys := r.Uniqueness.CandidateKeys(); len(keys) > 0 {
			fmt.Fprintf(&b, "Candidate keys: %s\n\n", strings.Join(keys, ", "))
		}
	}

	if r.Describe != nil && len(r.Describe.Columns) > 0 {
		b.WriteString("## Numeric Columns\n\n")
		b.WriteString("| Column | Count | Min | Max | Mean | Median | Std Dev |\n")
		b.WriteString("| --- | --- | --- | --- | --- | --- | --- |\n")
		for _, c := range r.Describe.Columns {
			fmt.Fprintf(&b, "| %s | %d | %g | %g | %.4g | %.4g | %.4g |\n",
				c.Column, c.Count, c.Min, c.Max, c.Mean, c.Median, c.StdDev)
		}
		b.WriteString("\n")
	}

	if r.Verification != nil && len(r.Verification.Findings) > 0 {
		b.WriteString("## Findings\n\n")
		for _, f := range r.Verification.Findings {
			fmt.Fprintf(&b, "- **%s** (%s): %s\n", f.Column, f.Kind, f.Detail)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// RenderHTML renders an assessment report as a standalone HTML fragment
func RenderHTML(r *quality.Report) []byte {
	md := RenderMarkdown(r)

	extensions := parser.CommonExtensions | parser.Tables
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(md))

	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.Render(doc, renderer)
}

// writeMarkdownTable writes a TableData as a markdown table section
func writeMarkdownTable(b *strings.Builder, t *chart.TableData) {
	fmt.Fprintf(b, "## %s\n\n", t.Title)

	labels := make([]string, len(t.Columns))
	separators := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		labels[i] = col.Label
		separators[i] = "---"
	}
	fmt.Fprintf(b, "| %s |\n", strings.Join(labels, " | "))
	fmt.Fprintf(b, "| %s |\n", strings.Join(separators, " | "))
	for _, row := range t.Rows {
		fmt.Fprintf(b, "| %s |\n", strings.Join(row, " | "))
	}
	b.WriteString("\n")
}
