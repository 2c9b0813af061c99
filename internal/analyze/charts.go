package analyze

import "sort"

// DefaultPalette is the color cycle used when the caller supplies none.
var DefaultPalette = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// Candidate-key highlight colors for the uniqueness chart.
const (
	colorCandidateKey = "#000080"
	colorRegular      = "#E6E6FA"
)

func assignColors(count int, palette []string) []string {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = palette[i%len(palette)]
	}
	return colors
}

// sortRowsDesc sorts rows by a value extractor, descending; the stable sort
// keeps original column order for ties.
func sortRowsDesc[T any](rows []T, value func(T) float64) {
	sort.SliceStable(rows, func(i, j int) bool {
		return value(rows[i]) > value(rows[j])
	})
}
