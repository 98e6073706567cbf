package cleaning

import (
	"log/slog"
	"math"
	"sort"
	"time"

	"unistats/internal/dataset"
)

const (
	gpaMin = 0.0
	gpaMax = 5.0

	// One derivation year is a fixed 365-day period.
	daysPerYear = 365.0

	minPlausibleAge = 15
	maxPlausibleAge = 80
)

// Cleaner imputes missing values, derives the age, years_enrolled and
// performance columns, and clamps the two silently-corrected fields.
// Processing time is injected so results are reproducible.
type Cleaner struct {
	now    time.Time
	logger *slog.Logger
}

// NewCleaner creates a cleaner that derives ages and enrollment spans
// relative to now.
func NewCleaner(now time.Time, logger *slog.Logger) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cleaner{now: now, logger: logger}
}

// Clean returns a new table with imputed, derived and clamped values. The
// input table is never mutated. Step order matters: imputation first, so
// derivation and clamping see complete columns, and clamping before the
// performance bucket so the bucket is a function of the clamped GPA.
func (c *Cleaner) Clean(t *dataset.Table) *dataset.Table {
	out := t.Clone()

	c.imputeNumeric(out)
	c.imputeCategorical(out)
	c.deriveFeatures(out)
	c.clampRanges(out)

	for i := range out.Records {
		out.Records[i].Performance = dataset.PerformanceFromGPA(out.Records[i].GPA)
	}
	out.MarkDerived()

	c.logger.Info("datos procesados",
		slog.Int("rows", out.Len()),
		slog.Int("columns", len(out.NumericColumns())))

	return out
}

// imputeNumeric replaces missing cells of the designated numeric columns
// with the median of the non-missing values of the same column.
func (c *Cleaner) imputeNumeric(t *dataset.Table) {
	for _, col := range dataset.ImputableNumericColumns {
		vals, err := t.Float(col)
		if err != nil {
			continue
		}
		med, ok := medianIgnoringNaN(vals)
		if !ok {
			continue
		}
		imputed := 0
		for i := range t.Records {
			if !t.Records[i].IsMissing(col) {
				continue
			}
			t.Records[i].SetNumeric(col, med)
			t.Records[i].ClearMissing(col)
			imputed++
		}
		if imputed > 0 {
			c.logger.Info("valores faltantes imputados",
				slog.String("column", string(col)),
				slog.Int("count", imputed),
				slog.Float64("median", med))
		}
	}
}

func (c *Cleaner) imputeCategorical(t *dataset.Table) {
	for _, col := range dataset.ImputableCategoricalColumns {
		for i := range t.Records {
			if v, ok := t.Records[i].Categorical(col); ok && v == "" {
				t.Records[i].SetCategorical(col, "Unknown")
			}
		}
	}
}

// deriveFeatures computes age as whole 365-day periods since birth and
// years_enrolled as fractional 365-day periods since enrollment.
func (c *Cleaner) deriveFeatures(t *dataset.Table) {
	for i := range t.Records {
		rec := &t.Records[i]
		if !rec.DateOfBirth.IsZero() {
			days := c.now.Sub(rec.DateOfBirth).Hours() / 24
			rec.Age = int(days / daysPerYear)
		}
		if !rec.EnrollmentDate.IsZero() {
			days := c.now.Sub(rec.EnrollmentDate).Hours() / 24
			rec.YearsEnrolled = days / daysPerYear
		}
	}
}

// clampRanges corrects the only two silently-corrected fields: GPA to
// [0, 5] and credits_remaining to non-negative. Every other out-of-range
// value is left intact for Validate to report.
func (c *Cleaner) clampRanges(t *dataset.Table) {
	clampedGPA, clampedCredits := 0, 0
	for i := range t.Records {
		rec := &t.Records[i]
		if rec.GPA < gpaMin {
			rec.GPA = gpaMin
			clampedGPA++
		} else if rec.GPA > gpaMax {
			rec.GPA = gpaMax
			clampedGPA++
		}
		if rec.CreditsRemaining < 0 {
			rec.CreditsRemaining = 0
			clampedCredits++
		}
	}
	if clampedGPA > 0 || clampedCredits > 0 {
		c.logger.Debug("valores fuera de rango corregidos",
			slog.Int("gpa", clampedGPA),
			slog.Int("credits_remaining", clampedCredits))
	}
}

// medianIgnoringNaN returns the median of the non-NaN values, using linear
// interpolation between the two middle values for even counts.
func medianIgnoringNaN(vals []float64) (float64, bool) {
	clean := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) {
			clean = append(clean, v)
		}
	}
	if len(clean) == 0 {
		return 0, false
	}
	sort.Float64s(clean)
	mid := len(clean) / 2
	if len(clean)%2 == 1 {
		return clean[mid], true
	}
	return (clean[mid-1] + clean[mid]) / 2, true
}
