package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"unistats/internal/dataset"
)

// StatRow is one named row of a descriptive-statistics table, holding one
// value per column.
type StatRow struct {
	Name   string
	Values []float64
}

// DescriptiveStats holds count, mean, std, min, quartiles, max and median
// for a set of numeric columns. Rows are ordered; the median appears both
// as the 50% quartile and as its own named row so callers can look it up
// directly.
type DescriptiveStats struct {
	Columns []dataset.Column
	Rows    []StatRow
}

// Row returns the values of the named row.
func (s DescriptiveStats) Row(name string) ([]float64, bool) {
	for _, r := range s.Rows {
		if r.Name == name {
			return r.Values, true
		}
	}
	return nil, false
}

// Empty reports whether no requested column qualified.
func (s DescriptiveStats) Empty() bool {
	return len(s.Columns) == 0
}

var statRowNames = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max", "median"}

// Describe computes descriptive statistics for the given numeric columns.
// Nil cols selects the six base numeric columns. Requested columns that are
// not numeric columns of the table are skipped; an empty result means none
// qualified. The standard deviation uses the sample (N-1) denominator and
// quartiles interpolate linearly.
func Describe(t *dataset.Table, cols []dataset.Column) DescriptiveStats {
	if cols == nil {
		cols = dataset.BaseNumericColumns
	}

	var out DescriptiveStats
	var perColumn [][]float64
	for _, col := range cols {
		vals, err := t.Float(col)
		if err != nil {
			continue
		}
		out.Columns = append(out.Columns, col)
		perColumn = append(perColumn, vals)
	}
	if len(out.Columns) == 0 {
		return out
	}

	out.Rows = make([]StatRow, len(statRowNames))
	for i, name := range statRowNames {
		out.Rows[i] = StatRow{Name: name, Values: make([]float64, len(out.Columns))}
	}
	for j, vals := range perColumn {
		if len(vals) == 0 {
			// A header-only file loads as zero rows; report count 0 and
			// NaN for every statistic instead of indexing into nothing.
			for i := 1; i < len(out.Rows); i++ {
				out.Rows[i].Values[j] = math.NaN()
			}
			continue
		}
		sorted := append([]float64(nil), vals...)
		sort.Float64s(sorted)

		out.Rows[0].Values[j] = float64(len(vals))
		out.Rows[1].Values[j] = stat.Mean(vals, nil)
		out.Rows[2].Values[j] = stat.StdDev(vals, nil)
		out.Rows[3].Values[j] = sorted[0]
		out.Rows[4].Values[j] = Quantile(sorted, 0.25)
		out.Rows[5].Values[j] = Quantile(sorted, 0.50)
		out.Rows[6].Values[j] = Quantile(sorted, 0.75)
		out.Rows[7].Values[j] = sorted[len(sorted)-1]
		out.Rows[8].Values[j] = Quantile(sorted, 0.50)
	}
	return out
}

// Quantile returns the p-quantile of sorted values using linear
// interpolation between order statistics, the convention of conventional
// descriptive statistics. gonum's stat.Quantile interpolates the empirical
// CDF instead, which disagrees with that convention for small samples, so
// the interpolation is done here.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}
	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Median returns the median of an unsorted slice.
func Median(vals []float64) float64 {
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	return Quantile(sorted, 0.5)
}

// Skewness returns the sample skewness; the GPA distribution summary only
// uses its sign.
func Skewness(vals []float64) float64 {
	return stat.Skew(vals, nil)
}
