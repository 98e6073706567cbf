package analysis

import (
	"sort"

	"unistats/internal/dataset"
)

// ValueCount is one value of a categorical column with its frequency.
type ValueCount struct {
	Value string
	Count int
}

// ValueCounts returns the frequencies of a categorical column sorted by
// descending count, ties broken by value so identical tables always produce
// identical output. An unknown column returns dataset.ErrColumnNotFound.
func ValueCounts(t *dataset.Table, col dataset.Column) ([]ValueCount, error) {
	vals, err := t.Strings(col)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, v := range vals {
		counts[v]++
	}

	out := make([]ValueCount, 0, len(counts))
	for v, n := range counts {
		out = append(out, ValueCount{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out, nil
}
