package cleaning

import (
	"fmt"

	"unistats/internal/dataset"
)

// nonNegativeColumns are validated but never corrected. Only GPA and
// credits_remaining are clamped by Clean; the asymmetry is deliberate.
var nonNegativeColumns = []dataset.Column{
	dataset.ColCurrentSemester,
	dataset.ColCreditsApproved,
	dataset.ColCreditsRemaining,
	dataset.ColCourseLoad,
	dataset.ColLibraryBooksBorrowed,
}

// Validate inspects a table and returns one Spanish problem description per
// detected condition, each naming the affected column and the count of
// offending rows. It never mutates the table and never fails: data-quality
// issues are advisory. Running it on a cleaned table normally yields an
// empty list; running it on raw data surfaces what cleaning would fix or
// report.
func (c *Cleaner) Validate(t *dataset.Table) []string {
	var problems []string

	for _, col := range nonNegativeColumns {
		vals, err := t.Float(col)
		if err != nil {
			continue
		}
		negatives := 0
		for _, v := range vals {
			if v < 0 {
				negatives++
			}
		}
		if negatives > 0 {
			problems = append(problems, fmt.Sprintf(
				"%d valores negativos encontrados en la columna '%s'",
				negatives, string(col)))
		}
	}

	outOfRange := 0
	for _, rec := range t.Records {
		if rec.GPA < gpaMin || rec.GPA > gpaMax {
			outOfRange++
		}
	}
	if outOfRange > 0 {
		problems = append(problems, fmt.Sprintf(
			"%d valores de GPA están fuera del rango 0-5", outOfRange))
	}

	young, old := 0, 0
	for _, rec := range t.Records {
		if rec.DateOfBirth.IsZero() {
			continue
		}
		years := c.now.Sub(rec.DateOfBirth).Hours() / 24 / daysPerYear
		if years < minPlausibleAge {
			young++
		}
		if years > maxPlausibleAge {
			old++
		}
	}
	if young > 0 {
		problems = append(problems, fmt.Sprintf(
			"%d estudiantes tienen menos de %d años", young, minPlausibleAge))
	}
	if old > 0 {
		problems = append(problems, fmt.Sprintf(
			"%d estudiantes tienen más de %d años", old, maxPlausibleAge))
	}

	future := 0
	for _, rec := range t.Records {
		if rec.EnrollmentDate.After(c.now) {
			future++
		}
	}
	if future > 0 {
		problems = append(problems, fmt.Sprintf(
			"%d fechas de matrícula están en el futuro", future))
	}

	return problems
}
