// Package analysis computes descriptive and grouped statistics over a
// cleaned university dataset.
//
// Every function is pure: it reads the table, never mutates it, and returns
// a new derived structure with no back-reference to the rows. Grouped
// results carry a deterministic order (by the documented sort key, with a
// name tiebreak) so identical input always yields identical output.
//
// Statistical conventions: sample standard deviation (N-1 denominator),
// Pearson product-moment correlation, percentages on the 0-100 scale, and
// linearly interpolated quantiles.
package analysis
