package analyze

import (
	"math"

	"goqa/domain/core"
	"goqa/domain/quality"
	"goqa/domain/table"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Describe computes descriptive statistics for every numeric-dominant
// column: summary stats, quartiles, distribution shape, IQR outliers, and
// an approximate normality check. Non-numeric columns are skipped.
func Describe(tbl *table.Table) (*quality.DescribeSummary, error) {
	if tbl == nil {
		return nil, core.ErrNilTable
	}

	summary := &quality.DescribeSummary{}
	for _, col := range tbl.Columns {
		if !numericDominant(col) {
			continue
		}
		colStats, err := describeColumn(col)
		if err != nil {
			return nil, err
		}
		summary.Columns = append(summary.Columns, colStats)
	}
	return summary, nil
}

// numericDominant reports whether numeric values form the majority of the
// column's non-missing entries
func numericDominant(col table.Column) bool {
	numeric, nonMissing := 0, 0
	for _, v := range col.Values {
		if v.IsMissing() {
			continue
		}
		nonMissing++
		if v.Type == table.TypeNumeric {
			numeric++
		}
	}
	return nonMissing > 0 && numeric*2 > nonMissing
}

func describeColumn(col table.Column) (quality.ColumnStats, error) {
	data := col.NumericValues()
	colStats := quality.ColumnStats{Column: col.Name, Count: len(data)}
	if len(data) == 0 {
		return colStats, nil
	}

	var err error
	if colStats.Mean, err = stats.Mean(data); err != nil {
		return colStats, err
	}
	if colStats.Min, err = stats.Min(data); err != nil {
		return colStats, err
	}
	if colStats.Max, err = stats.Max(data); err != nil {
		return colStats, err
	}
	if colStats.Median, err = stats.Median(data); err != nil {
		return colStats, err
	}
	if len(data) > 1 {
		if colStats.StdDev, err = stats.StandardDeviation(data); err != nil {
			return colStats, err
		}
		if colStats.Q25, err = stats.Percentile(data, 25); err != nil {
			return colStats, err
		}
		if colStats.Q75, err = stats.Percentile(data, 75); err != nil {
			return colStats, err
		}
	} else {
		colStats.Q25, colStats.Q75 = data[0], data[0]
	}

	colStats.Skewness = sampleSkewness(data, colStats.Mean, colStats.StdDev)
	colStats.Kurtosis = sampleKurtosis(data, colStats.Mean, colStats.StdDev)
	colStats.Outliers = countOutliers(data, colStats.Q25, colStats.Q75)
	colStats.IsNormal, colStats.NormalP = testNormality(data, colStats.Mean, colStats.StdDev)

	return colStats, nil
}

// sampleSkewness computes sample skewness using the adjusted Fisher-Pearson
// coefficient
func sampleSkewness(data []float64, mean, stdDev float64) float64 {
	if len(data) < 3 || stdDev == 0 {
		return 0
	}

	n := float64(len(data))
	sumCubed := 0.0
	for _, x := range data {
		d := (x - mean) / stdDev
		sumCubed += d * d * d
	}

	skewness := sumCubed / n
	correction := math.Sqrt(n*(n-1)) / (n - 2)
	return skewness * correction
}

// sampleKurtosis computes sample kurtosis (normal distribution is 3)
func sampleKurtosis(data []float64, mean, stdDev float64) float64 {
	if len(data) < 4 || stdDev == 0 {
		return 0
	}

	n := float64(len(data))
	sumFourth := 0.0
	for _, x := range data {
		d := (x - mean) / stdDev
		sumFourth += d * d * d * d
	}

	kurtosis := sumFourth / n
	excess := kurtosis - 3
	correction := (n - 1) / ((n - 2) * (n - 3))
	excess = excess*correction + 6/(n+1)
	return excess + 3
}

// testNormality performs a simplified normality check from skewness and
// kurtosis with a chi-square approximation. Not a substitute for a full
// Shapiro-Wilk test on small samples.
func testNormality(data []float64, mean, stdDev float64) (isNormal bool, pValue float64) {
	if len(data) < 3 || stdDev == 0 {
		return false, 1.0
	}

	skewness := sampleSkewness(data, mean, stdDev)
	kurtosis := sampleKurtosis(data, mean, stdDev)

	testStat := math.Abs(skewness) + math.Abs(kurtosis-3)/2

	chiDist := distuv.ChiSquared{K: 2}
	pValue = 1 - chiDist.CDF(testStat*testStat)

	return pValue > 0.05, pValue
}

// countOutliers identifies outliers using the IQR method
func countOutliers(data []float64, q25, q75 float64) int {
	iqr := q75 - q25
	lower := q25 - 1.5*iqr
	upper := q75 + 1.5*iqr

	count := 0
	for _, x := range data {
		if x < lower || x > upper {
			count++
		}
	}
	return count
}
