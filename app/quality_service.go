package app

import (
	"context"
	"time"

	"goqa/domain/chart"
	"goqa/domain/core"
	"goqa/domain/quality"
	"goqa/domain/table"
	"goqa/internal"
	"goqa/internal/analyze"
	"goqa/ports"

	"golang.org/x/sync/errgroup"
)

// QualityService orchestrates a full assessment of one table: the three
// quality analyzers, descriptive statistics, deep verification, and chart
// construction. The analyzers are independent read-only passes, so they
// fan out concurrently.
type QualityService struct {
	reader   ports.TableReaderPort
	metadata ports.MetadataPort
	config   quality.Config
	palette  []string
	log      *internal.Logger
}

var _ ports.AnalyzerPort = (*QualityService)(nil)

// NewQualityService creates a quality service. reader and metadata may be
// nil when only in-memory tables are assessed.
func NewQualityService(reader ports.TableReaderPort, metadata ports.MetadataPort, cfg quality.Config) *QualityService {
	return &QualityService{
		reader:   reader,
		metadata: metadata,
		config:   cfg,
		palette:  analyze.DefaultPalette,
		log:      internal.DefaultLogger.WithComponent("QualityService"),
	}
}

// WithPalette overrides the chart color palette
func (s *QualityService) WithPalette(palette []string) *QualityService {
	if len(palette) > 0 {
		s.palette = palette
	}
	return s
}

// Assess runs every configured analyzer over the table and assembles the
// combined report
func (s *QualityService) Assess(ctx context.Context, tbl *table.Table) (*quality.Report, error) {
	if tbl == nil {
		return nil, core.ErrNilTable
	}

	startTime := time.Now()
	report := &quality.Report{
		ID:          core.ReportID(core.NewID()),
		ComputedAt:  core.Now(),
		RowCount:    tbl.RowCount(),
		ColumnCount: tbl.ColumnCount(),
	}

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		summary, err := analyze.CheckCompleteness(tbl)
		report.Completeness = summary
		return err
	})
	g.Go(func() error {
		summary, err := analyze.CheckConsistency(tbl)
		report.Consistency = summary
		return err
	})
	g.Go(func() error {
		summary, err := analyze.CheckUniquenessSampled(tbl, s.config.SampleValues)
		report.Uniqueness = summary
		return err
	})
	if s.config.RunDescribe {
		g.Go(func() error {
			summary, err := analyze.Describe(tbl)
			report.Describe = summary
			return err
		})
	}
	if s.config.RunVerify {
		g.Go(func() error {
			verification, err := analyze.VerifyConsistency(tbl)
			report.Verification = verification
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.Charts = map[string]*chart.Config{
		"completeness": analyze.VisualizeCompleteness(report.Completeness, s.palette),
		"consistency":  analyze.VisualizeConsistency(report.Consistency, s.palette),
		"uniqueness":   analyze.VisualizeUniqueness(report.Uniqueness),
	}
	report.QualityScore = report.OverallScore()
	report.RuntimeMs = time.Since(startTime).Milliseconds()

	s.log.Info("assessment complete (%d columns, %d rows, score %.2f, %dms)",
		report.ColumnCount, report.RowCount, report.QualityScore, report.RuntimeMs)
	return report, nil
}

// AssessFile reads a CSV or XLSX file and assesses the resulting table.
// File metadata is attached to the report.
func (s *QualityService) AssessFile(ctx context.Context, path string) (*quality.Report, error) {
	tbl, err := s.reader.ReadTable(path)
	if err != nil {
		return nil, err
	}

	meta, err := s.metadata.ReadMetadata(path)
	if err != nil {
		return nil, err
	}

	report, err := s.Assess(ctx, tbl)
	if err != nil {
		return nil, err
	}
	report.Metadata = meta
	return report, nil
}
