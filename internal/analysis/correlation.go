package analysis

import (
	"gonum.org/v1/gonum/stat"

	"unistats/internal/dataset"
)

// Correlation is a symmetric matrix of pairwise Pearson coefficients with a
// unit diagonal. Values[i][j] correlates Columns[i] with Columns[j].
type Correlation struct {
	Columns []dataset.Column
	Values  [][]float64
}

// Empty reports whether no numeric columns qualified.
func (c Correlation) Empty() bool {
	return len(c.Columns) == 0
}

// At returns the coefficient for a pair of columns by name.
func (c Correlation) At(a, b dataset.Column) (float64, bool) {
	ai, bi := -1, -1
	for i, col := range c.Columns {
		if col == a {
			ai = i
		}
		if col == b {
			bi = i
		}
	}
	if ai < 0 || bi < 0 {
		return 0, false
	}
	return c.Values[ai][bi], true
}

// CorrelationMatrix computes the Pearson correlation matrix for the given
// columns. Nil cols auto-detects every numeric column of the table,
// including the derived ones once cleaning has run. Requested columns that
// are not numeric are skipped; the result is empty when none qualify.
func CorrelationMatrix(t *dataset.Table, cols []dataset.Column) Correlation {
	if cols == nil {
		cols = t.NumericColumns()
	}

	var out Correlation
	var series [][]float64
	for _, col := range cols {
		vals, err := t.Float(col)
		if err != nil {
			continue
		}
		out.Columns = append(out.Columns, col)
		series = append(series, vals)
	}
	if len(out.Columns) == 0 {
		return out
	}

	n := len(out.Columns)
	out.Values = make([][]float64, n)
	for i := range out.Values {
		out.Values[i] = make([]float64, n)
		out.Values[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := stat.Correlation(series[i], series[j], nil)
			out.Values[i][j] = r
			out.Values[j][i] = r
		}
	}
	return out
}
