package report

import (
	"context"
	"testing"

	"goqa/app"
	"goqa/domain/quality"
	"goqa/domain/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildReport(t *testing.T) *quality.Report {
	t.Helper()
	tbl := table.New(
		table.Column{Name: "user_id", Values: []table.Value{
			table.NewNumericValue(1),
			table.NewNumericValue(2),
		}},
		table.Column{Name: "city", Values: []table.Value{
			table.NewTextValue("Berlin"),
			table.NewMissingValue(),
		}},
	)

	svc := app.NewQualityService(nil, nil, quality.DefaultConfig())
	report, err := svc.Assess(context.Background(), tbl)
	require.NoError(t, err)
	return report
}

func TestRenderMarkdownSections(t *testing.T) {
	md := RenderMarkdown(buildReport(t))

	assert.Contains(t, md, "# Data Quality Report")
	assert.Contains(t, md, "## Completeness")
	assert.Contains(t, md, "## Consistency")
	assert.Contains(t, md, "## Uniqueness")
	assert.Contains(t, md, "## Numeric Columns")
	assert.Contains(t, md, "Candidate keys: user_id")
	assert.Contains(t, md, "Missing Values") // table labels replace underscores
}

func TestRenderHTMLContainsTables(t *testing.T) {
	out := RenderHTML(buildReport(t))

	html := string(out)
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "Berlin")
}

func TestRenderMarkdownOmitsEmptySections(t *testing.T) {
	report := &quality.Report{}
	md := RenderMarkdown(report)

	assert.Contains(t, md, "# Data Quality Report")
	assert.NotContains(t, md, "## Completeness")
	assert.NotContains(t, md, "## Findings")
}
