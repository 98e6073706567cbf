package dataset

import (
	"math"
)

// Table holds the dataset rows. Pipeline stages never share a Table: the
// cleaner works on a clone and aggregations only read.
type Table struct {
	Records []StudentRecord

	derived bool
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Records)
}

// Clone returns an independently owned deep copy of the table.
func (t *Table) Clone() *Table {
	out := &Table{
		Records: make([]StudentRecord, len(t.Records)),
		derived: t.derived,
	}
	for i := range t.Records {
		out.Records[i] = t.Records[i].clone()
	}
	return out
}

// MarkDerived records that the cleaner has populated the age, years_enrolled
// and performance columns, which makes the first two visible to
// NumericColumns.
func (t *Table) MarkDerived() {
	t.derived = true
}

// HasDerived reports whether the derived columns are populated.
func (t *Table) HasDerived() bool {
	return t.derived
}

// NumericColumns returns the numeric columns of the table in a fixed order:
// the six base columns, plus age and years_enrolled once derived.
func (t *Table) NumericColumns() []Column {
	cols := make([]Column, 0, len(BaseNumericColumns)+2)
	cols = append(cols, BaseNumericColumns...)
	if t.derived {
		cols = append(cols, ColAge, ColYearsEnrolled)
	}
	return cols
}

// Float extracts a numeric column as a slice. Cells flagged missing come
// back as NaN so callers can impute or skip them. Unknown or non-numeric
// columns return ErrColumnNotFound.
func (t *Table) Float(c Column) ([]float64, error) {
	out := make([]float64, len(t.Records))
	for i := range t.Records {
		if t.Records[i].IsMissing(c) {
			out[i] = math.NaN()
			continue
		}
		v, ok := t.Records[i].Numeric(c)
		if !ok {
			return nil, unknownColumnError(c)
		}
		out[i] = v
	}
	if len(t.Records) == 0 {
		// Probe the column name against an empty record so an unknown
		// key still fails on an empty table.
		var probe StudentRecord
		if _, ok := probe.Numeric(c); !ok {
			return nil, unknownColumnError(c)
		}
	}
	return out, nil
}

// Strings extracts a categorical column as a slice. Unknown or
// non-categorical columns return ErrColumnNotFound.
func (t *Table) Strings(c Column) ([]string, error) {
	out := make([]string, len(t.Records))
	for i := range t.Records {
		v, ok := t.Records[i].Categorical(c)
		if !ok {
			return nil, unknownColumnError(c)
		}
		out[i] = v
	}
	if len(t.Records) == 0 {
		var probe StudentRecord
		if _, ok := probe.Categorical(c); !ok {
			return nil, unknownColumnError(c)
		}
	}
	return out, nil
}
