package quality

import (
	"time"

	"goqa/domain/chart"
	"goqa/domain/core"
	"goqa/domain/table"
)

// CompletenessRow summarizes missingness for a single column
type CompletenessRow struct {
	Column     string  `json:"column"`
	Missing    int     `json:"missing"`
	Present    int     `json:"present"`
	MissingPct float64 `json:"missing_pct"` // 0-100, rounded to 2 decimals
}

// CompletenessSummary holds one row per column in original column order
type CompletenessSummary struct {
	RowCount int               `json:"row_count"`
	Rows     []CompletenessRow `json:"rows"`
}

// ConsistencyRow summarizes type uniformity for a single column
type ConsistencyRow struct {
	Column       string            `json:"column"`
	DominantType table.ValueType   `json:"dominant_type"`
	Types        []table.ValueType `json:"types"` // distinct observed types, stable order
	NonMissing   int               `json:"non_missing"`
	Mismatches   int               `json:"mismatches"`   // values not of the dominant type
	MismatchPct  float64           `json:"mismatch_pct"` // relative to non-missing count
}

// ConsistencySummary holds one row per column in original column order
type ConsistencySummary struct {
	RowCount int              `json:"row_count"`
	Rows     []ConsistencyRow `json:"rows"`
}

// UniquenessRow summarizes value cardinality for a single column.
// Missing values are excluded from the distinct count; DistinctPct is
// relative to the total row count.
type UniquenessRow struct {
	Column       string   `json:"column"`
	Distinct     int      `json:"distinct"`
	DistinctPct  float64  `json:"distinct_pct"`
	Missing      int      `json:"missing"`
	Samples      []string `json:"samples"` // up to 5 distinct values, first-seen order
	CandidateKey bool     `json:"candidate_key"`
}

// UniquenessSummary holds one row per column in original column order
type UniquenessSummary struct {
	RowCount int             `json:"row_count"`
	Rows     []UniquenessRow `json:"rows"`
}

// FindingKind classifies a verification finding
type FindingKind string

const (
	FindingMixedDateFormats    FindingKind = "mixed_date_formats"
	FindingBooleanAliases      FindingKind = "boolean_aliases"
	FindingMissingPlaceholders FindingKind = "missing_placeholders"
	FindingEncodingAnomaly     FindingKind = "encoding_anomaly"
	FindingMixedPrecision      FindingKind = "mixed_precision"
)

// Finding is a single detected inconsistency in a column
type Finding struct {
	Column string      `json:"column"`
	Kind   FindingKind `json:"kind"`
	Detail string      `json:"detail"`
}

// VerificationReport lists detected inconsistencies; clean columns are omitted
type VerificationReport struct {
	Findings []Finding `json:"findings"`
}

// ColumnStats carries descriptive statistics for a numeric-dominant column
type ColumnStats struct {
	Column   string  `json:"column"`
	Count    int     `json:"count"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	StdDev   float64 `json:"std_dev"`
	Q25      float64 `json:"q25"`
	Q75      float64 `json:"q75"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`
	Outliers int     `json:"outliers"` // IQR method
	IsNormal bool    `json:"is_normal"`
	NormalP  float64 `json:"normal_p"`
}

// DescribeSummary holds descriptive statistics for each numeric column
type DescribeSummary struct {
	Columns []ColumnStats `json:"columns"`
}

// DocProperties holds XLSX document properties; nil for CSV files
type DocProperties struct {
	Title    string `json:"title,omitempty"`
	Subject  string `json:"subject,omitempty"`
	Creator  string `json:"creator,omitempty"`
	Created  string `json:"created,omitempty"`
	Modified string `json:"modified,omitempty"`
	Category string `json:"category,omitempty"`
}

// FileMetadata describes a tabular file on disk, read fresh on every call
type FileMetadata struct {
	FileName     string         `json:"file_name"`
	Path         string         `json:"path"`
	SizeBytes    int64          `json:"size_bytes"`
	SizeHuman    string         `json:"size_human"` // e.g. "1.234 MB"
	LastModified time.Time      `json:"last_modified"`
	RowCount     int            `json:"row_count"` // data rows, header excluded
	ColumnCount  int            `json:"column_count"`
	ColumnNames  []string       `json:"column_names"`
	Doc          *DocProperties `json:"doc,omitempty"`
}

// Config holds analyzer tuning knobs
type Config struct {
	SampleValues int  `json:"sample_values"` // distinct samples per column in uniqueness rows
	RunDescribe  bool `json:"run_describe"`  // include numeric descriptive stats in reports
	RunVerify    bool `json:"run_verify"`    // include deep consistency verification in reports
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		SampleValues: 5,
		RunDescribe:  true,
		RunVerify:    true,
	}
}

// Report is the combined output of one assessment over one table
type Report struct {
	ID          core.ReportID  `json:"id"`
	ComputedAt  core.Timestamp `json:"computed_at"`
	RowCount    int            `json:"row_count"`
	ColumnCount int            `json:"column_count"`

	Completeness *CompletenessSummary `json:"completeness"`
	Consistency  *ConsistencySummary  `json:"consistency"`
	Uniqueness   *UniquenessSummary   `json:"uniqueness"`
	Describe     *DescribeSummary     `json:"describe,omitempty"`
	Verification *VerificationReport  `json:"verification,omitempty"`

	Charts   map[string]*chart.Config `json:"charts,omitempty"`
	Metadata *FileMetadata            `json:"metadata,omitempty"`

	// QualityScore is 0-1, higher is better; completeness-weighted
	QualityScore float64 `json:"quality_score"`
	RuntimeMs    int64   `json:"runtime_ms"`
}

// OverallScore combines section summaries into a 0-1 score. Each column
// contributes its completeness and consistency ratios equally.
func (r *Report) OverallScore() float64 {
	if r.Completeness == nil || len(r.Completeness.Rows) == 0 {
		return 0
	}

	score := 0.0
	for _, row := range r.Completeness.Rows {
		score += 1.0 - row.MissingPct/100.0
	}
	score /= float64(len(r.Completeness.Rows))

	if r.Consistency != nil && len(r.Consistency.Rows) > 0 {
		consistent := 0.0
		for _, row := range r.Consistency.Rows {
			consistent += 1.0 - row.MismatchPct/100.0
		}
		consistent /= float64(len(r.Consistency.Rows))
		score = (score + consistent) / 2.0
	}

	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score
}

// CandidateKeys returns the columns flagged as candidate unique keys
func (s *UniquenessSummary) CandidateKeys() []string {
	var keys []string
	for _, row := range s.Rows {
		if row.CandidateKey {
			keys = append(keys, row.Column)
		}
	}
	return keys
}
