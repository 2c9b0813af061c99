package analyze

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"goqa/adapters/tabular/classifier"
	"goqa/domain/core"
	"goqa/domain/quality"
	"goqa/domain/table"
)

// VerifyConsistency runs the deep per-column inconsistency checks that go
// beyond type uniformity: mixed date layouts, mixed boolean spellings,
// string placeholders for missing values, encoding anomalies, and mixed
// numeric precision. Columns with no findings are omitted.
func VerifyConsistency(tbl *table.Table) (*quality.VerificationReport, error) {
	if tbl == nil {
		return nil, core.ErrNilTable
	}

	report := &quality.VerificationReport{}
	for _, col := range tbl.Columns {
		report.Findings = append(report.Findings, verifyColumn(col)...)
	}
	return report, nil
}

func verifyColumn(col table.Column) []quality.Finding {
	var findings []quality.Finding

	if detail, ok := mixedDateLayouts(col); ok {
		findings = append(findings, quality.Finding{
			Column: col.Name, Kind: quality.FindingMixedDateFormats, Detail: detail,
		})
	}
	if detail, ok := mixedBooleanSpellings(col); ok {
		findings = append(findings, quality.Finding{
			Column: col.Name, Kind: quality.FindingBooleanAliases, Detail: detail,
		})
	}
	if detail, ok := missingPlaceholders(col); ok {
		findings = append(findings, quality.Finding{
			Column: col.Name, Kind: quality.FindingMissingPlaceholders, Detail: detail,
		})
	}
	if detail, ok := encodingAnomalies(col); ok {
		findings = append(findings, quality.Finding{
			Column: col.Name, Kind: quality.FindingEncodingAnomaly, Detail: detail,
		})
	}
	if detail, ok := mixedPrecision(col); ok {
		findings = append(findings, quality.Finding{
			Column: col.Name, Kind: quality.FindingMixedPrecision, Detail: detail,
		})
	}

	return findings
}

// mixedDateLayouts reports when date-like values in a column were written
// in more than one layout
func mixedDateLayouts(col table.Column) (string, bool) {
	layouts := make(map[string]struct{})
	for _, v := range col.Values {
		if v.IsMissing() {
			continue
		}
		if v.Type != table.TypeDate && v.Type != table.TypeText {
			continue
		}
		if layout, ok := classifier.MatchDateLayout(v.RawOrString()); ok {
			layouts[layout] = struct{}{}
		}
	}
	if len(layouts) < 2 {
		return "", false
	}
	return fmt.Sprintf("date values use %d layouts: %s", len(layouts), joinSorted(layouts)), true
}

// mixedBooleanSpellings reports when the same logical boolean is spelled
// more than one way ("TRUE" next to "Yes", "Y" next to "true")
func mixedBooleanSpellings(col table.Column) (string, bool) {
	spellings := map[bool]map[string]struct{}{
		true:  {},
		false: {},
	}
	for _, v := range col.Values {
		if v.Type != table.TypeBoolean && v.Type != table.TypeText {
			continue
		}
		raw := v.RawOrString()
		if b, ok := classifier.ParseBooleanAlias(raw); ok {
			spellings[b][raw] = struct{}{}
		}
	}

	var mixed []string
	for _, logical := range []bool{true, false} {
		if len(spellings[logical]) > 1 {
			mixed = append(mixed, joinSorted(spellings[logical]))
		}
	}
	if len(mixed) == 0 {
		return "", false
	}
	return "mixed boolean spellings: " + strings.Join(mixed, "; "), true
}

// missingPlaceholders reports string stand-ins for absent values
func missingPlaceholders(col table.Column) (string, bool) {
	found := make(map[string]struct{})
	for _, v := range col.Values {
		if v.Type != table.TypeText {
			continue
		}
		raw := v.RawOrString()
		if classifier.IsMissingPlaceholder(raw) {
			found[raw] = struct{}{}
		}
	}
	if len(found) == 0 {
		return "", false
	}
	return "missing value placeholders: " + joinSorted(found), true
}

// encodingAnomalies reports text values containing non-ASCII characters
func encodingAnomalies(col table.Column) (string, bool) {
	count := 0
	for _, v := range col.Values {
		if v.Type != table.TypeText {
			continue
		}
		for _, r := range v.RawOrString() {
			if r > 127 {
				count++
				break
			}
		}
	}
	if count == 0 {
		return "", false
	}
	return fmt.Sprintf("%d value(s) contain non-ASCII characters", count), true
}

// mixedPrecision reports numeric columns mixing whole and fractional values
func mixedPrecision(col table.Column) (string, bool) {
	integral, fractional := 0, 0
	for _, v := range col.Values {
		if v.Type != table.TypeNumeric || v.NumericVal == nil {
			continue
		}
		if *v.NumericVal == math.Trunc(*v.NumericVal) {
			integral++
		} else {
			fractional++
		}
	}
	if integral == 0 || fractional == 0 {
		return "", false
	}
	return fmt.Sprintf("mixed numeric precision: %d whole, %d fractional", integral, fractional), true
}

func joinSorted(set map[string]struct{}) string {
	items := make([]string, 0, len(set))
	for item := range set {
		items = append(items, item)
	}
	sort.Strings(items)
	return strings.Join(items, ", ")
}
